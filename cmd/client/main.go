package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: todo-client [-a address] <command> [arguments]

commands:
  register <login> <name> <password>   create an account
  list                                 list todos
  add <text>                           add a todo
  done <id>                            mark a todo as done
  rm <id>                              delete a todo
  groups                               list groups

list, add, done, rm and groups authenticate with the
TODO_LOGIN and TODO_PASSWORD environment variables.`

func main() {
	printBuildInfo()

	address := flag.String("a", "http://localhost:8080", "server address")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{BaseURL: *address})

	if err := run(ctx, client, args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, client adapter.ServerAdapter, args []string) error {
	command, args := args[0], args[1:]

	if command == "register" {
		if len(args) != 3 {
			return fmt.Errorf("register expects <login> <name> <password>")
		}
		user, err := client.Register(ctx, models.RegisterRequest{Login: args[0], Name: args[1], Password: args[2]})
		if err != nil {
			return err
		}
		fmt.Printf("registered %s (id %d)\n", user.Login, user.ID)
		return nil
	}

	if _, err := client.Login(ctx, models.LoginRequest{
		Login:    os.Getenv("TODO_LOGIN"),
		Password: os.Getenv("TODO_PASSWORD"),
	}); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	switch command {
	case "list":
		todos, err := client.ListTodos(ctx)
		if err != nil {
			return err
		}
		for _, todo := range todos {
			mark := " "
			if todo.Done {
				mark = "x"
			}
			fmt.Printf("[%s] %d\t%s\n", mark, todo.ID, todo.Text)
		}
		return nil

	case "add":
		if len(args) != 1 {
			return fmt.Errorf("add expects <text>")
		}
		todo, err := client.CreateTodo(ctx, models.TodoCreate{Text: args[0]})
		if err != nil {
			return err
		}
		fmt.Printf("created todo %d\n", todo.ID)
		return nil

	case "done":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		todo, err := client.MarkDone(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("done: %s\n", todo.Text)
		return nil

	case "rm":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		if err := client.DeleteTodo(ctx, id); err != nil {
			return err
		}
		fmt.Printf("deleted todo %d\n", id)
		return nil

	case "groups":
		groups, err := client.ListGroups(ctx)
		if err != nil {
			return err
		}
		for _, group := range groups {
			fmt.Printf("%d\t%s\n", group.ID, group.Name)
		}
		return nil

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected a single <id> argument")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
