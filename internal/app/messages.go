// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app runs one batch: load the input items, process each of them,
// and write the report.
//
// All Msg* constants are the human-readable log lines of a run. Keeping them
// in one place keeps the wording stable for anyone grepping the output.
package app

const (
	// MsgStartingUp opens every run.
	MsgStartingUp = "Create Mini Actor starting up."

	// MsgRunningAt is logged at debug level with the absolute path of the
	// running executable.
	MsgRunningAt = "Running at %s"

	// MsgUsingInput and MsgUsingOutput report the effective file paths.
	MsgUsingInput  = "Using input: %s"
	MsgUsingOutput = "Using output: %s"

	// MsgNoItems is logged when the input holds no items; an empty report
	// is still written.
	MsgNoItems = "No input items found. Nothing to process."

	// MsgOutputWritten reports the absolute path of the written report.
	MsgOutputWritten = "Output written to: %s"

	// MsgComplete closes a successful run.
	MsgComplete = "Processing complete. Items processed: %d."

	// MsgItemFailed is the log stored in the record of an item whose
	// processing failed.
	MsgItemFailed = "Error processing item #%d: %v"
)
