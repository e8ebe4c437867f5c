package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Console) status() string {
	if c.current == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", c.current.Username(), c.current.Role())
}

func (c *Console) root(ctx context.Context) error {
	fmt.Fprintln(c.out, "Welcome to Clinic Manager (type 'help' for commands)")
	c.showLastLogin()

	c.login(ctx)

	for {
		fmt.Fprintf(c.out, "clinic %s> ", c.status())
		line, err := c.reader.ReadString('\n')
		if err != nil {
			return nil
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if c.isLoggedIn() {
				fmt.Fprintln(c.out, "Available commands: users, adduser, passwd, patients, appointments, inventory, export <users|patients|status|inventory>, logout, exit")
			} else {
				fmt.Fprintln(c.out, "Available commands: login, exit")
			}
		case "login":
			c.login(ctx)
		case "logout":
			c.logout()
		case "users":
			c.listUsers(ctx)
		case "adduser":
			c.addUser(ctx)
		case "passwd":
			c.resetPassword(ctx)
		case "patients":
			c.listPatients()
		case "appointments":
			c.listAppointments()
		case "inventory":
			c.listInventory()
		case "export":
			c.export(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(c.out, "Bye!")
			return nil
		default:
			fmt.Fprintf(c.out, "Unknown command: %s\n", cmd)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
}

func (c *Console) showLastLogin() {
	saved := c.settings.Load()
	if saved.LastUsername != "" {
		fmt.Fprintf(c.out, "Last signed in: %s (%s)\n", saved.LastUsername, saved.LastRole)
	}
}

func (c *Console) logout() {
	if c.current == nil {
		return
	}
	fmt.Fprintf(c.out, "Signed out %s.\n", c.current.Username())
	c.current = nil
}
