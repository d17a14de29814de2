package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Open   func(OpenArgs) (Result, error)
	Delete func(DeleteArgs) (Result, error)
	List   func() (Result, error)
	Lang   func(LangArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeOpen:
		if handlers.Open == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "open handler not configured"}
		}
		return handlers.Open(*cmd.Open)
	case TypeDelete:
		if handlers.Delete == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "delete handler not configured"}
		}
		return handlers.Delete(*cmd.Delete)
	case TypeList:
		if handlers.List == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "list handler not configured"}
		}
		return handlers.List()
	case TypeLang:
		if handlers.Lang == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "lang handler not configured"}
		}
		return handlers.Lang(*cmd.Lang)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
