package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/campus-coffee/internal/service"
	"github.com/MKhiriev/campus-coffee/models"
)

const usage = `usage: client [flags] <command> [args]

commands:
  list
  get <id>
  find <login>
  create <login> <email> <first> <last>
  update <id> <login> <email> <first> <last>
  delete <id>
  version`

var (
	errUsage          = errors.New(usage)
	errUnknownCommand = errors.New("unknown command")
)

// commandLine runs one user command against users and prints the result as
// indented JSON to out.
type commandLine struct {
	users     service.UserService
	buildInfo models.AppBuildInfo
	out       io.Writer
}

func (c *commandLine) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	command, args := args[0], args[1:]
	switch command {
	case "list":
		if err := expectArgs(args, 0); err != nil {
			return err
		}
		users, err := c.users.GetAll(ctx)
		if err != nil {
			return err
		}
		return c.print(users)

	case "get":
		if err := expectArgs(args, 1); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		user, err := c.users.GetByID(ctx, id)
		if err != nil {
			return err
		}
		return c.print(user)

	case "find":
		if err := expectArgs(args, 1); err != nil {
			return err
		}
		user, err := c.users.GetByLoginName(ctx, args[0])
		if err != nil {
			return err
		}
		return c.print(user)

	case "create":
		if err := expectArgs(args, 4); err != nil {
			return err
		}
		user, err := c.users.Upsert(ctx, models.NewUser(profileFromArgs(args)))
		if err != nil {
			return err
		}
		return c.print(user)

	case "update":
		if err := expectArgs(args, 5); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		user, err := c.users.Upsert(ctx, models.ExistingUser(id, profileFromArgs(args[1:])))
		if err != nil {
			return err
		}
		return c.print(user)

	case "delete":
		if err := expectArgs(args, 1); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err = c.users.Delete(ctx, id); err != nil {
			return err
		}
		return c.print(map[string]int64{"deleted": id})

	case "version":
		_, err := fmt.Fprint(c.out, c.buildInfo)
		return err
	}

	return fmt.Errorf("%w %q\n%w", errUnknownCommand, command, errUsage)
}

func (c *commandLine) print(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func expectArgs(args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("expected %d argument(s), got %d\n%w", n, len(args), errUsage)
	}
	return nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id %q: %w", raw, err)
	}
	return id, nil
}

// profileFromArgs reads login, email, first and last name in that order.
func profileFromArgs(args []string) models.UserProfile {
	return models.UserProfile{
		LoginName:    args[0],
		EmailAddress: args[1],
		FirstName:    args[2],
		LastName:     args[3],
	}
}
