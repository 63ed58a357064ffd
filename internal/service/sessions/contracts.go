package sessions

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsCollector интерфейс сборщика метрик сессий
type MetricsCollector interface {
	SetActiveSessions(n int)
}
