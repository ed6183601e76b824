package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-users-api/internal/adapter"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/models"
)

const usage = `usage: users-client [flags] <command> [args]

commands:
  create -name N -email E -password P -cpf C -number N
  get <id>
  update <id> [-name N] [-email E] [-password P] [-cpf C] [-number N]
  delete <id>
  list
  version`

type App struct {
	adapter adapter.UserAdapter
	out     io.Writer

	logger *logger.Logger
}

func NewApp(userAdapter adapter.UserAdapter, out io.Writer, logger *logger.Logger) Client {
	return &App{
		adapter: userAdapter,
		out:     out,
		logger:  logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrNoCommand, usage)
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("command", command).Strs("args", rest).Msg("running command")

	switch command {
	case "create":
		return a.create(ctx, rest)
	case "get":
		return a.get(ctx, rest)
	case "update":
		return a.update(ctx, rest)
	case "delete":
		return a.delete(ctx, rest)
	case "list":
		return a.list(ctx)
	case "version":
		return a.version(ctx)
	default:
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, command, usage)
	}
}

func (a *App) create(ctx context.Context, args []string) error {
	fields, err := parseUserFields("create", args)
	if err != nil {
		return err
	}

	user, err := a.adapter.CreateUser(ctx, fields)
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) get(ctx context.Context, args []string) error {
	id, _, err := parseUserID(args)
	if err != nil {
		return err
	}

	user, err := a.adapter.GetUser(ctx, id)
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) update(ctx context.Context, args []string) error {
	id, rest, err := parseUserID(args)
	if err != nil {
		return err
	}

	fields, err := parseUserFields("update", rest)
	if err != nil {
		return err
	}

	user, err := a.adapter.UpdateUser(ctx, id, fields)
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) delete(ctx context.Context, args []string) error {
	id, _, err := parseUserID(args)
	if err != nil {
		return err
	}

	msg, err := a.adapter.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	return a.print(msg)
}

func (a *App) list(ctx context.Context) error {
	users, err := a.adapter.ListUsers(ctx)
	if err != nil {
		return err
	}
	return a.print(users)
}

func (a *App) version(ctx context.Context) error {
	v, err := a.adapter.GetVersion(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, v)
	return err
}

func (a *App) print(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	_, err = fmt.Fprintln(a.out, string(data))
	return err
}

func parseUserID(args []string) (int64, []string, error) {
	if len(args) == 0 {
		return 0, nil, fmt.Errorf("%w: missing id", ErrInvalidUserID)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %q", ErrInvalidUserID, args[0])
	}
	return id, args[1:], nil
}

// parseUserFields sets only the slots whose flags were given, so that an
// explicitly empty value ("-email=") is still sent.
func parseUserFields(command string, args []string) (models.UserFields, error) {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	name := fs.String("name", "", "user name")
	email := fs.String("email", "", "user email")
	password := fs.String("password", "", "user password")
	cpf := fs.String("cpf", "", "user CPF")
	number := fs.String("number", "", "user phone number")

	if err := fs.Parse(args); err != nil {
		return models.UserFields{}, fmt.Errorf("%s: %w", command, err)
	}

	var fields models.UserFields
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			fields.Name = name
		case "email":
			fields.Email = email
		case "password":
			fields.Password = password
		case "cpf":
			fields.CPF = cpf
		case "number":
			fields.Number = number
		}
	})

	return fields, nil
}
