package internal

import (
	"log"
	"time"

	"przelewy/entity"
	"przelewy/services"
)

// Logger is a named log handler. Messages go to the process log and, when a
// database is attached, are mirrored into the payment log collection so that
// provider exchanges can be audited later. Debug messages are dropped unless
// the debug flag is set.
type Logger struct {
	name     string
	debug    bool
	database services.Database
}

func NewLogger(name string, debug bool, database services.Database) *Logger {
	return &Logger{
		name:     name,
		debug:    debug,
		database: database,
	}
}

func (l *Logger) Debug(message string) {
	if !l.debug {
		return
	}
	l.write("DEBUG", message, nil)
}

func (l *Logger) Info(message string) {
	l.write("INFO", message, nil)
}

func (l *Logger) Warn(message string) {
	l.write("WARN", message, nil)
}

func (l *Logger) Error(message string, err error) {
	l.write("ERROR", message, err)
}

func (l *Logger) write(level string, message string, err error) {
	if err != nil {
		log.Printf("%s: %s: %s; %v", l.name, level, message, err)
	} else {
		log.Printf("%s: %s: %s", l.name, level, message)
	}
	if l.database == nil {
		return
	}
	record := &entity.LogMessage{
		Time:   time.Now(),
		Level:  level,
		Source: l.name,
		Text:   message,
	}
	if err != nil {
		record.ErrorText = err.Error()
	}
	if e := l.database.WriteLogMessage(record); e != nil {
		log.Printf("%s: write log message: %v", l.name, e)
	}
}

var _ services.LogHandler = (*Logger)(nil)
