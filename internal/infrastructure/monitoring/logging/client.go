package logging

import (
	"fmt"

	"github.com/turtacn/DevFolio/pkg/client"
)

// clientLogger adapts Logger to the printf-style client.Logger.
type clientLogger struct {
	l Logger
}

// ClientLogger returns a client.Logger writing through l under the name
// "client".
func ClientLogger(l Logger) client.Logger {
	if l == nil {
		l = NewNopLogger()
	}
	return clientLogger{l: l.Named("client")}
}

func (c clientLogger) Debugf(format string, args ...interface{}) {
	c.l.Debug(fmt.Sprintf(format, args...))
}

func (c clientLogger) Infof(format string, args ...interface{}) {
	c.l.Info(fmt.Sprintf(format, args...))
}

func (c clientLogger) Errorf(format string, args ...interface{}) {
	c.l.Warn(fmt.Sprintf(format, args...))
}
