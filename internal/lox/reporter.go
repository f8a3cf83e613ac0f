package lox

import (
	"fmt"
	"io"
)

// Reporter defines the interface for structure that can display errors to the
// user. A reporter is defined to separate errors reporting code from errors
// displaying code.
type Reporter interface {
	Report(err error)
	Reset()
	HadError() bool
	HadRuntimeError() bool
}

// SimpleReporter writes error as-is to inner writer
type SimpleReporter struct {
	writer        io.Writer
	hadErr        bool
	hadRuntimeErr bool
}

func NewSimpleReporter(writer io.Writer) Reporter {
	return &SimpleReporter{writer, false, false}
}

func (reporter *SimpleReporter) Report(err error) {
	if IsRuntimeError(err) {
		reporter.hadRuntimeErr = true
	} else {
		reporter.hadErr = true
	}
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
	reporter.hadRuntimeErr = false
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) HadRuntimeError() bool {
	return reporter.hadRuntimeErr
}
