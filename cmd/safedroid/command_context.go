package main

import (
	"sync"

	"github.com/spf13/cobra"
)

// annotationStructuredLogging marks long-running commands whose fatal-path
// errors should be emitted through the structured logger instead of plain
// stderr text.
const annotationStructuredLogging = "structured-logging"

type commandExecutionContext struct {
	CommandPath       string
	UsesStructuredLog bool
}

var (
	commandExecutionMu    sync.Mutex
	commandExecutionState commandExecutionContext
)

func setCommandExecutionContext(ctx commandExecutionContext) {
	commandExecutionMu.Lock()
	defer commandExecutionMu.Unlock()
	commandExecutionState = ctx
}

func currentCommandExecutionContext() commandExecutionContext {
	commandExecutionMu.Lock()
	defer commandExecutionMu.Unlock()
	return commandExecutionState
}

func resetCommandExecutionContext() {
	setCommandExecutionContext(commandExecutionContext{})
}

func commandUsesStructuredLogging(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[annotationStructuredLogging] == "true" {
			return true
		}
	}
	return false
}
