package entity

import "time"

// LogMessage is a single payment log record written to the log collection.
type LogMessage struct {
	Time      time.Time `json:"time" bson:"time"`
	Level     string    `json:"level" bson:"level"`
	Source    string    `json:"source" bson:"source"`
	Text      string    `json:"text" bson:"text"`
	ErrorText string    `json:"error,omitempty" bson:"error,omitempty"`
}

func (l *LogMessage) DataType() string {
	return "log_message"
}
