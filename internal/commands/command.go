package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeOpen   Type = "open"
	TypeDelete Type = "delete"
	TypeList   Type = "list"
	TypeLang   Type = "lang"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type OpenArgs struct {
	ID string
}

type DeleteArgs struct {
	IDs []string
}

type LangArgs struct {
	Code string
}

type Command struct {
	Type   Type
	Raw    string
	Open   *OpenArgs
	Delete *DeleteArgs
	Lang   *LangArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeOpen:
		return parseOpen(input, args)
	case TypeDelete:
		return parseDelete(input, args)
	case TypeList:
		return Command{Type: TypeList, Raw: input}, nil
	case TypeLang:
		return parseLang(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseOpen(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "open requires a reminder id"}
	}
	return Command{Type: TypeOpen, Raw: raw, Open: &OpenArgs{ID: args[0]}}, nil
}

func parseDelete(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "delete requires at least one reminder id"}
	}
	return Command{Type: TypeDelete, Raw: raw, Delete: &DeleteArgs{IDs: args}}, nil
}

func parseLang(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "lang requires a locale code"}
	}
	return Command{Type: TypeLang, Raw: raw, Lang: &LangArgs{Code: args[0]}}, nil
}
