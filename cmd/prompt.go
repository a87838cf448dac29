package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"dirsync/core/config"
	"dirsync/core/utils"

	"golang.org/x/term"
)

// prompter asks for settings the configuration left empty.
type prompter struct {
	in           *bufio.Reader
	out          io.Writer
	readPassword func() (string, error)
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	p := &prompter{in: bufio.NewReader(in), out: out}
	p.readPassword = p.readLine

	// Hide the password when attached to a terminal
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.readPassword = func() (string, error) {
			b, err := term.ReadPassword(int(f.Fd()))
			fmt.Fprintln(p.out)
			return string(b), err
		}
	}

	return p
}

// complete fills, in order, the directory server, inventory URL, username,
// directory account and password. One password serves both systems unless a
// directory password is already configured.
func (p *prompter) complete(cfg *config.Config) error {
	var err error

	if cfg.Directory.Server == "" {
		if cfg.Directory.Server, err = p.ask("LDAP Server: "); err != nil {
			return err
		}
	}
	cfg.Directory.Server = utils.NormalizeServerURL(cfg.Directory.Server)

	if cfg.Inventory.URL == "" {
		if cfg.Inventory.URL, err = p.ask("JSS URL: "); err != nil {
			return err
		}
	}

	if cfg.Inventory.Username == "" {
		if cfg.Inventory.Username, err = p.ask("Username: "); err != nil {
			return err
		}
	}

	if cfg.Directory.Account == "" {
		account, ok := utils.DeriveAccountName(cfg.Inventory.Username)
		if !ok {
			if account, err = p.ask("LDAP User(CN): "); err != nil {
				return err
			}
		}
		cfg.Directory.Account = account
	}

	if cfg.Inventory.Password == "" {
		fmt.Fprint(p.out, "Password: ")
		if cfg.Inventory.Password, err = p.readPassword(); err != nil {
			return err
		}
	}
	if cfg.Directory.Password == "" {
		cfg.Directory.Password = cfg.Inventory.Password
	}

	return nil
}

func (p *prompter) ask(label string) (string, error) {
	fmt.Fprint(p.out, label)
	return p.readLine()
}

func (p *prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
