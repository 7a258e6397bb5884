package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if u := a.session.Current(); u != nil {
		return fmt.Sprintf("(%s)", u.Username)
	}
	return ""
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		fmt.Println("Auth:      logout, exit")
		fmt.Println("Insights:  insights, addinsight, editinsight <id>, delinsight <id>")
		fmt.Println("Bookmarks: bookmarks, addbookmark, editbookmark <id>, delbookmark <id>, tags")
		fmt.Println("Goals:     goals [status], addgoal, editgoal <id>, delgoal <id>")
		fmt.Println("Health:    health [date], loghealth, delhealth <id>")
		fmt.Println("Todos:     todos, addtodo, edittodo <id>, done <id>, deltodo <id>")
	} else {
		fmt.Println("Available commands: register, login, exit")
	}
}

func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to lifekeeper (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("lk %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)

		case "insights":
			a.listInsights(ctx)
		case "addinsight":
			a.addInsight(ctx)
		case "editinsight":
			a.editInsight(ctx, args)
		case "delinsight":
			a.deleteInsight(ctx, args)

		case "bookmarks":
			a.listBookmarks(ctx)
		case "addbookmark":
			a.addBookmark(ctx)
		case "editbookmark":
			a.editBookmark(ctx, args)
		case "delbookmark":
			a.deleteBookmark(ctx, args)
		case "tags":
			a.listTags(ctx)

		case "goals":
			a.listGoals(ctx, args)
		case "addgoal":
			a.addGoal(ctx)
		case "editgoal":
			a.editGoal(ctx, args)
		case "delgoal":
			a.deleteGoal(ctx, args)

		case "health":
			a.showHealth(ctx, args)
		case "loghealth":
			a.logHealth(ctx)
		case "delhealth":
			a.deleteHealthLog(ctx, args)

		case "todos":
			a.listTodos(ctx)
		case "addtodo":
			a.addTodo(ctx)
		case "edittodo":
			a.editTodo(ctx, args)
		case "done":
			a.toggleTodo(ctx, args)
		case "deltodo":
			a.deleteTodo(ctx, args)

		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

// requireArg returns the first argument, or prompts for it when missing.
func (a *App) requireArg(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return getSimpleText(a.reader, prompt, os.Stdout)
}
