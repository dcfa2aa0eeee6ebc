package cmd

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/imsgtui/imsg/internal/contacts"
	"github.com/imsgtui/imsg/internal/logging"
	"github.com/imsgtui/imsg/internal/paths"
	"github.com/imsgtui/imsg/internal/tui"
)

// chatWithContact resolves a contact and drives the chat view over it.
// When nothing resolves it falls back to the first-run setup view, saves
// whatever setup committed, and tries once more.
func chatWithContact(name string) error {
	dir, err := contacts.Load(paths.ConfigFile())
	if err != nil {
		return err
	}

	res, err := contacts.Resolve(dir, contactOverride, name)
	if errors.Is(err, contacts.ErrNoContact) {
		if verbose {
			fmt.Println("No contact configured. Launching setup TUI.")
		}
		if err := tui.RunSetup(dir); err != nil {
			return err
		}
		if err := contacts.Save(paths.ConfigFile(), dir); err != nil {
			return err
		}
		// A cancelled setup leaves the default unset and the original
		// error stands.
		res, err = contacts.Resolve(dir, contactOverride, name)
	}
	if err != nil {
		return err
	}

	if verbose {
		printResolution(res, name)
	}

	logger := newLogger()
	defer func() { _ = logger.Sync() }()
	logger.Info("chat session start",
		zap.String("contact", res.Identifier),
		zap.String("source", res.Source.String()))

	return tui.RunChat(res.Identifier, res.DisplayName, logger)
}

func printResolution(res *contacts.Resolved, name string) {
	switch res.Source {
	case contacts.SourceOverride:
		if res.Identifier != contactOverride {
			fmt.Printf("Note: Formatted contact identifier from '%s' to '%s'\n", contactOverride, res.Identifier)
		}
	case contacts.SourceNamed:
		if res.MatchedName != name {
			fmt.Printf("Using contact '%s' (matched '%s' case-insensitively)\n", res.MatchedName, name)
		} else {
			fmt.Printf("Using contact '%s'\n", res.MatchedName)
		}
	case contacts.SourceDefault:
		fmt.Printf("Using default contact: %s\n", res.Identifier)
	}
}

// newLogger opens the file logger. The chat view must come up even when
// the log path is unusable, so failures degrade to a no-op logger.
func newLogger() *zap.Logger {
	logger, err := logging.New(paths.LogFile())
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
