package models

type RequestStatus string

const (
	StatusIdle    RequestStatus = "idle"
	StatusLoading RequestStatus = "loading"
	StatusReady   RequestStatus = "ready"
	StatusFailed  RequestStatus = "failed"
)

// RequestState is the observable state of one AI request. Payload is set
// only when Ready, Reason only when Failed.
type RequestState struct {
	Status  RequestStatus
	Payload string
	Reason  string
}

func Idle() RequestState {
	return RequestState{Status: StatusIdle}
}

func Loading() RequestState {
	return RequestState{Status: StatusLoading}
}

func Ready(payload string) RequestState {
	return RequestState{Status: StatusReady, Payload: payload}
}

func Failed(reason string) RequestState {
	return RequestState{Status: StatusFailed, Reason: reason}
}
