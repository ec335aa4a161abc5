package mocks

import (
	mock "github.com/stretchr/testify/mock"
)

// maxLogFields is the largest field count AllowLogs matches
const maxLogFields = 8

// AllowLogs lets every log call on l through at any level. Tests that care
// about a particular line check it afterwards with Logged.
func AllowLogs(l *Logger) *Logger {
	for n := 0; n <= maxLogFields; n++ {
		fields := make([]interface{}, n)
		for i := range fields {
			fields[i] = mock.Anything
		}
		l.EXPECT().Debug(mock.Anything, fields...).Maybe()
		l.EXPECT().Info(mock.Anything, fields...).Maybe()
		l.EXPECT().Warn(mock.Anything, fields...).Maybe()
		l.EXPECT().Error(mock.Anything, fields...).Maybe()
	}
	return l
}

// Logged reports whether msg was logged through method, one of
// "Debug", "Info", "Warn" or "Error".
func Logged(l *Logger, method, msg string) bool {
	return LogCount(l, method, msg) > 0
}

// LogCount returns how many times msg was logged through method.
// An empty msg counts every call to method.
func LogCount(l *Logger, method, msg string) int {
	n := 0
	for _, call := range l.Calls {
		if call.Method != method {
			continue
		}
		if msg == "" || call.Arguments.String(0) == msg {
			n++
		}
	}
	return n
}
