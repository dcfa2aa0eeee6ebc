// Package sender delivers outbound text through the Messages app.
package sender

import (
	"fmt"
	"os/exec"
	"strings"
)

// The message body travels as an osascript argument, never interpolated
// into the script, so arbitrary text cannot break out of the AppleScript.
const scriptTemplate = `on run {targetBody}
	tell application "Messages"
		set targetService to first service whose service type = iMessage
		set targetBuddy to buddy "%s" of targetService
		send targetBody to targetBuddy
	end tell
end run`

// Sender invokes osascript to hand a message to the Messages app. The
// call blocks until the script finishes; there is no timeout and no
// retry.
type Sender struct {
	run func(script, text string) ([]byte, error)
}

// New returns a Sender backed by the real osascript binary.
func New() *Sender {
	return &Sender{run: runOsascript}
}

// Send delivers text to the contact identifier. A non-zero osascript exit
// surfaces the script's stderr in the returned error.
func (s *Sender) Send(identifier, text string) error {
	out, err := s.run(sendScript(identifier), text)
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("send message: %s", msg)
		}
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

func sendScript(identifier string) string {
	return fmt.Sprintf(scriptTemplate, identifier)
}

func runOsascript(script, text string) ([]byte, error) {
	cmd := exec.Command("osascript", "-", text)
	cmd.Stdin = strings.NewReader(script)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	err := cmd.Run()
	return []byte(stderr.String()), err
}
