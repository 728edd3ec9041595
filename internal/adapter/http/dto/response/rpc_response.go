package response

const (
	RPCStatusSuccess = "success"
	RPCStatusError   = "error"
)

// RPCResponse is the envelope every RPC action answers with.
type RPCResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
	Error  string `json:"error,omitempty"`
}

func RPCSuccess(data any) RPCResponse {
	return RPCResponse{Status: RPCStatusSuccess, Data: data}
}

func RPCError(msg string) RPCResponse {
	return RPCResponse{Status: RPCStatusError, Error: msg}
}

// AckResponse acknowledges actions that return no data.
type AckResponse struct {
	Success bool `json:"success"`
}
