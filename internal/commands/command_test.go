package commands

import (
	"errors"
	"testing"
)

func TestParseOpen(t *testing.T) {
	cmd, err := Parse("/open rem-42")
	if err != nil {
		t.Fatalf("parse open: %v", err)
	}
	if cmd.Type != TypeOpen || cmd.Open == nil || cmd.Open.ID != "rem-42" {
		t.Fatalf("unexpected command: %#v", cmd)
	}
}

func TestParseDeleteMultipleIDs(t *testing.T) {
	cmd, err := Parse("delete a b c")
	if err != nil {
		t.Fatalf("parse delete: %v", err)
	}
	if cmd.Type != TypeDelete || len(cmd.Delete.IDs) != 3 {
		t.Fatalf("unexpected command: %#v", cmd)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		input string
		code  ErrorCode
	}{
		{"", ErrCodeEmptyInput},
		{"/", ErrCodeEmptyInput},
		{"frobnicate", ErrCodeUnknownCommand},
		{"open", ErrCodeInvalidArgument},
		{"open a b", ErrCodeInvalidArgument},
		{"delete", ErrCodeInvalidArgument},
		{"lang", ErrCodeInvalidArgument},
	}
	for _, tc := range cases {
		_, err := Parse(tc.input)
		if err == nil {
			t.Fatalf("expected error for %q", tc.input)
		}
		var cmdErr *CommandError
		if !errors.As(err, &cmdErr) {
			t.Fatalf("expected CommandError for %q, got %v", tc.input, err)
		}
		if cmdErr.Code != tc.code {
			t.Fatalf("unexpected code for %q: got %q want %q", tc.input, cmdErr.Code, tc.code)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	var opened string
	handlers := Handlers{
		Open: func(args OpenArgs) (Result, error) {
			opened = args.ID
			return Result{Message: "opened"}, nil
		},
		List: func() (Result, error) {
			return Result{Message: "3 reminders"}, nil
		},
	}

	cmd, err := Parse("open rem-7")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	res, err := Execute(cmd, handlers)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if opened != "rem-7" || res.Message != "opened" {
		t.Fatalf("unexpected dispatch result: opened=%q res=%#v", opened, res)
	}

	cmd, err = Parse("list")
	if err != nil {
		t.Fatalf("parse list: %v", err)
	}
	res, err = Execute(cmd, handlers)
	if err != nil {
		t.Fatalf("execute list: %v", err)
	}
	if res.Message != "3 reminders" {
		t.Fatalf("unexpected list result: %#v", res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("delete rem-1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected handler_missing, got %v", err)
	}
}
