// Command blogctl is a small command-line client for the blog server. It
// talks to the REST API through the adapter package and prints responses as
// indented JSON.
//
// Usage:
//
//	blogctl -a http://localhost:8080 login <name> <password>
//	blogctl -a http://localhost:8080 -t <token> accounts list
//	blogctl -a http://localhost:8080 -t <token> accounts get <name>
//	blogctl -a http://localhost:8080 -t <token> accounts create <name> <password> <permissions>
//	blogctl -a http://localhost:8080 -t <token> accounts delete <name>
//	blogctl -a http://localhost:8080 -t <token> posts list
//	blogctl -a http://localhost:8080 -t <token> posts get <title>
//	blogctl -a http://localhost:8080 -t <token> posts create <title> <content>
//	blogctl -a http://localhost:8080 -t <token> posts update <title> <new-title> <content>
//	blogctl -a http://localhost:8080 -t <token> posts delete <title>
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/DvEyZ/rkblog-be/internal/adapter"
	"github.com/DvEyZ/rkblog-be/internal/logger"
	"github.com/DvEyZ/rkblog-be/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	address := flag.String("a", "http://localhost:8080", "server address")
	token := flag.String("t", "", "bearer token for authenticated requests")
	timeout := flag.Duration("timeout", 10*time.Second, "request timeout")
	showVersion := flag.Bool("version", false, "print build info and exit")
	flag.Parse()

	if *showVersion {
		printBuildInfo()
		return
	}

	log := logger.NewLogger("blogctl")

	serverAdapter, err := adapter.NewHTTPServerAdapter(*address, *timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}
	serverAdapter.SetToken(*token)

	if err := run(serverAdapter, flag.Args()); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func run(serverAdapter adapter.ServerAdapter, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no command given, expected login|accounts|posts")
	}

	ctx := context.Background()

	switch args[0] {
	case "login":
		if len(args) != 3 {
			return fmt.Errorf("usage: login <name> <password>")
		}
		token, err := serverAdapter.Login(ctx, models.Credentials{Name: args[1], Password: args[2]})
		if err != nil {
			return err
		}
		fmt.Println(token)
		return nil
	case "accounts":
		return runAccounts(ctx, serverAdapter, args[1:])
	case "posts":
		return runPosts(ctx, serverAdapter, args[1:])
	default:
		return fmt.Errorf("unknown command %q, expected login|accounts|posts", args[0])
	}
}

func runAccounts(ctx context.Context, serverAdapter adapter.ServerAdapter, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: accounts list|get|create|update|delete")
	}

	switch args[0] {
	case "list":
		accounts, err := serverAdapter.ListAccounts(ctx)
		if err != nil {
			return err
		}
		return printJSON(accounts)
	case "get":
		if len(args) != 2 {
			return fmt.Errorf("usage: accounts get <name>")
		}
		account, err := serverAdapter.GetAccount(ctx, args[1])
		if err != nil {
			return err
		}
		return printJSON(account)
	case "create":
		if len(args) != 4 {
			return fmt.Errorf("usage: accounts create <name> <password> <permissions>")
		}
		account, err := serverAdapter.CreateAccount(ctx, models.AccountWrite{
			Name:        args[1],
			Password:    args[2],
			Permissions: models.PermissionLevel(args[3]),
		})
		if err != nil {
			return err
		}
		return printJSON(account)
	case "update":
		if len(args) != 5 {
			return fmt.Errorf("usage: accounts update <name> <new-name> <password> <permissions>")
		}
		account, err := serverAdapter.UpdateAccount(ctx, args[1], models.AccountWrite{
			Name:        args[2],
			Password:    args[3],
			Permissions: models.PermissionLevel(args[4]),
		})
		if err != nil {
			return err
		}
		return printJSON(account)
	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: accounts delete <name>")
		}
		account, err := serverAdapter.DeleteAccount(ctx, args[1])
		if err != nil {
			return err
		}
		return printJSON(account)
	default:
		return fmt.Errorf("unknown accounts subcommand %q", args[0])
	}
}

func runPosts(ctx context.Context, serverAdapter adapter.ServerAdapter, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: posts list|get|create|update|delete")
	}

	switch args[0] {
	case "list":
		posts, err := serverAdapter.ListPosts(ctx)
		if err != nil {
			return err
		}
		return printJSON(posts)
	case "get":
		if len(args) != 2 {
			return fmt.Errorf("usage: posts get <title>")
		}
		post, err := serverAdapter.GetPost(ctx, args[1])
		if err != nil {
			return err
		}
		return printJSON(post)
	case "create":
		if len(args) != 3 {
			return fmt.Errorf("usage: posts create <title> <content>")
		}
		post, err := serverAdapter.CreatePost(ctx, models.PostWrite{Title: args[1], Content: args[2]})
		if err != nil {
			return err
		}
		return printJSON(post)
	case "update":
		if len(args) != 4 {
			return fmt.Errorf("usage: posts update <title> <new-title> <content>")
		}
		post, err := serverAdapter.UpdatePost(ctx, args[1], models.PostWrite{Title: args[2], Content: args[3]})
		if err != nil {
			return err
		}
		return printJSON(post)
	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: posts delete <title>")
		}
		post, err := serverAdapter.DeletePost(ctx, args[1])
		if err != nil {
			return err
		}
		return printJSON(post)
	default:
		return fmt.Errorf("unknown posts subcommand %q", args[0])
	}
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
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
