package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and password and creates a new account.
// Registration logs the new user in on success.
func (a *App) Register(ctx context.Context) {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	user, err := a.session.Register(ctx, username, string(password))
	if err != nil {
		fmt.Println("Registration failed:", err)
		return
	}

	fmt.Printf("Welcome, %s!\n", user.Username)
}

// Login prompts for credentials and authenticates against the local store.
func (a *App) Login(ctx context.Context) {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	user, err := a.session.Login(ctx, username, string(password))
	if err != nil {
		fmt.Println("Login failed:", err)
		return
	}

	fmt.Printf("Welcome back, %s!\n", user.Username)
}

// Logout ends the session. Logging out while anonymous is harmless.
func (a *App) Logout(ctx context.Context) {
	if err := a.session.Logout(ctx); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Logged out.")
}
