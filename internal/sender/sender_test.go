package sender

import (
	"errors"
	"strings"
	"testing"
)

func TestSendPassesTextAsArgument(t *testing.T) {
	var gotScript, gotText string
	s := &Sender{run: func(script, text string) ([]byte, error) {
		gotScript = script
		gotText = text
		return nil, nil
	}}

	if err := s.Send("+15551234567", "hello there"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if gotText != "hello there" {
		t.Errorf("text argument = %q, want %q", gotText, "hello there")
	}
	if !strings.Contains(gotScript, `buddy "+15551234567" of targetService`) {
		t.Errorf("script does not target the buddy:\n%s", gotScript)
	}
	// The body must never be spliced into the script itself.
	if strings.Contains(gotScript, "hello there") {
		t.Error("message body leaked into the script")
	}
}

func TestSendSurfacesStderr(t *testing.T) {
	s := &Sender{run: func(script, text string) ([]byte, error) {
		return []byte("execution error: Messages got an error (-1728)\n"), errors.New("exit status 1")
	}}

	err := s.Send("+15551234567", "hi")
	if err == nil {
		t.Fatal("Send() expected error")
	}
	if !strings.Contains(err.Error(), "Messages got an error") {
		t.Errorf("error %q does not carry the script stderr", err)
	}
}

func TestSendEmptyStderrKeepsExecError(t *testing.T) {
	execErr := errors.New("exec: \"osascript\": executable file not found in $PATH")
	s := &Sender{run: func(script, text string) ([]byte, error) {
		return nil, execErr
	}}

	err := s.Send("+15551234567", "hi")
	if !errors.Is(err, execErr) {
		t.Errorf("Send() error = %v, want wrapped exec error", err)
	}
}
