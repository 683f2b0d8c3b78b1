package log

const (
	ModeProduction = "production"
	ModeDebug      = "debug"

	EncodingConsole = "console"
	EncodingJSON    = "json"

	fieldRunID = "run_id"
	fieldTask  = "task"
)

type ctxKey int

const (
	runIDKey ctxKey = iota
	taskKey
)
