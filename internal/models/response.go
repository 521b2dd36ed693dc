package models

import (
	"bytes"
	"errors"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(data interface{}, message string) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(err string) Response {
	return Response{
		Success: false,
		Error:   err,
	}
}

// FlexBool unmarshals both JSON booleans and the 0/1 integers the legacy
// SQLite-backed API emitted for boolean columns.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("1")):
		*b = true
	case bytes.Equal(data, []byte("false")), bytes.Equal(data, []byte("0")), bytes.Equal(data, []byte("null")):
		*b = false
	default:
		return errors.New("invalid boolean value")
	}
	return nil
}

func (b FlexBool) Bool() bool {
	return bool(b)
}
