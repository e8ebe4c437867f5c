package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dkorsakov/clinickeeper/internal/models"
)

func (c *Console) requireLogin() bool {
	if !c.isLoggedIn() {
		fmt.Fprintln(c.out, "Sign in first.")
		return false
	}
	return true
}

func (c *Console) listUsers(ctx context.Context) {
	if !c.requireLogin() {
		return
	}

	all, err := c.repo.FindAll(ctx)
	if err != nil {
		c.logger.Error(ctx, "failed to list users", "error", err)
		fmt.Fprintln(c.out, "Unable to read the staff roster.")
		return
	}

	fmt.Fprintf(c.out, "%-16s %s\n", "USERNAME", "ROLE")
	for _, u := range all {
		fmt.Fprintf(c.out, "%-16s %s\n", u.Username(), u.Role())
	}
	fmt.Fprintf(c.out, "%d staff on duty\n", len(all))
}

func (c *Console) addUser(ctx context.Context) {
	if !c.requireLogin() {
		return
	}

	username, err := getSimpleText(c.reader, "New employee username", c.out)
	if err != nil || strings.TrimSpace(username) == "" {
		return
	}
	role, err := getSimpleText(c.reader, "Role", c.out)
	if err != nil || strings.TrimSpace(role) == "" {
		return
	}
	password, err := getPassword("Password", c.out)
	if err != nil || strings.TrimSpace(password) == "" {
		return
	}

	user, err := models.NewUserWithPassword(strings.ToUpper(strings.TrimSpace(username)), strings.TrimSpace(role), password)
	if err != nil {
		c.logger.Error(ctx, "failed to create user", "error", err)
		return
	}
	if err := c.repo.Save(ctx, user); err != nil {
		c.logger.Error(ctx, "failed to save user", "username", user.Username(), "error", err)
		fmt.Fprintln(c.out, "Unable to save the new employee.")
		return
	}
	fmt.Fprintf(c.out, "User %s joined the roster.\n", user.Username())
}

// resetPassword rotates the signed-in user's own credential: a fresh salt
// and hash replace the stored ones, the id stays.
func (c *Console) resetPassword(ctx context.Context) {
	if !c.requireLogin() {
		return
	}

	password, err := getPassword("New password", c.out)
	if err != nil || strings.TrimSpace(password) == "" {
		return
	}

	updated, err := c.current.WithNewPassword(password)
	if err != nil {
		c.logger.Error(ctx, "failed to rotate password", "error", err)
		return
	}
	if err := c.repo.Save(ctx, updated); err != nil {
		c.logger.Error(ctx, "failed to save rotated password", "username", updated.Username(), "error", err)
		fmt.Fprintln(c.out, "Unable to update the password.")
		return
	}
	c.current = updated
	fmt.Fprintf(c.out, "Password updated for %s.\n", updated.Username())
}
