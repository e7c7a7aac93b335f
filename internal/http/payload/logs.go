package payload

import (
	"exercisetracker/internal/core"
	"net/url"
)

// LogsRequest carries the optional log filters. Values that do not parse are ignored.
type LogsRequest struct {
	From  string
	To    string
	Limit string
}

func NewLogsRequest(values url.Values) LogsRequest {
	return LogsRequest{
		From:  values.Get("from"),
		To:    values.Get("to"),
		Limit: values.Get("limit"),
	}
}

func (l LogsRequest) ToQuery() core.LogQuery {
	return core.NewLogQuery(l.From, l.To, l.Limit)
}
