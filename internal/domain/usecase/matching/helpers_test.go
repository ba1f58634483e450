package matching

import (
	"time"

	"github.com/stretchr/testify/mock"

	coremocks "github.com/fintomate/receipt-matcher/mocks/port/core"
)

// quietLogger accepts any log call; tests assert behavior, not log lines
func quietLogger() *coremocks.MockLogger {
	l := new(coremocks.MockLogger)
	l.On("Debug", mock.Anything, mock.Anything).Maybe()
	l.On("Info", mock.Anything, mock.Anything).Maybe()
	l.On("Warn", mock.Anything, mock.Anything).Maybe()
	l.On("Error", mock.Anything, mock.Anything).Maybe()
	return l
}

// fixedTimeProvider returns the same instant on every Now call
func fixedTimeProvider(fixed time.Time) *coremocks.MockTimeProvider {
	tp := new(coremocks.MockTimeProvider)
	tp.On("Now").Return(fixed).Maybe()
	tp.On("Sleep", mock.Anything).Maybe()
	return tp
}
