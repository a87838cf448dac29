package cmd

import (
	"bytes"
	"strings"
	"testing"

	"dirsync/core/config"
	"dirsync/core/directory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_AllBlank(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("dc01.yourorg.corp\nhttps://jss:8443\njane.doe\ns3cret\n"), &out)

	cfg := &config.Config{Directory: directory.Config{BaseOU: directory.DefaultBaseOU}}
	require.NoError(t, p.complete(cfg))

	assert.Equal(t, "LDAP Server: JSS URL: Username: Password: ", out.String())
	assert.Equal(t, "ldaps://dc01.yourorg.corp", cfg.Directory.Server)
	assert.Equal(t, "https://jss:8443", cfg.Inventory.URL)
	assert.Equal(t, "jane.doe", cfg.Inventory.Username)
	assert.Equal(t, "Jane Doe", cfg.Directory.Account)
	assert.Equal(t, "s3cret", cfg.Inventory.Password)
	assert.Equal(t, "s3cret", cfg.Directory.Password)
}

func TestPrompter_AccountFallback(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("ldaps://dc01\nhttps://jss\nj.r.doe\nJane R Doe\npw\n"), &out)

	cfg := &config.Config{}
	require.NoError(t, p.complete(cfg))

	assert.Equal(t, "LDAP Server: JSS URL: Username: LDAP User(CN): Password: ", out.String())
	assert.Equal(t, "ldaps://dc01", cfg.Directory.Server)
	assert.Equal(t, "Jane R Doe", cfg.Directory.Account)
}

func TestPrompter_ConfiguredValuesAreNotPrompted(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader(""), &out)

	cfg := &config.Config{}
	cfg.Directory.Server = "ldap://dc01:389"
	cfg.Directory.Password = "dir-pw"
	cfg.Inventory.URL = "https://jss"
	cfg.Inventory.Username = "admin"
	cfg.Inventory.Password = "inv-pw"

	require.NoError(t, p.complete(cfg))

	assert.Empty(t, out.String())
	assert.Equal(t, "ldap://dc01:389", cfg.Directory.Server)
	assert.Equal(t, "Admin", cfg.Directory.Account)
	assert.Equal(t, "dir-pw", cfg.Directory.Password)
}

func TestPrompter_UnterminatedLastLine(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("pw"), &out)

	cfg := &config.Config{}
	cfg.Directory.Server = "ldaps://dc01"
	cfg.Inventory.URL = "https://jss"
	cfg.Inventory.Username = "jane.doe"

	require.NoError(t, p.complete(cfg))
	assert.Equal(t, "pw", cfg.Directory.Password)
}

func TestPrompter_EOF(t *testing.T) {
	p := newPrompter(strings.NewReader(""), &bytes.Buffer{})

	err := p.complete(&config.Config{})
	assert.Error(t, err)
}

func TestSyncCommand_Registered(t *testing.T) {
	c, _, err := RootCmd.Find([]string{"sync"})
	require.NoError(t, err)
	assert.Equal(t, "sync", c.Name())

	for _, name := range []string{"dry-run", "insecure-skip-verify", "base-ou", "page-size"} {
		assert.NotNil(t, c.Flags().Lookup(name), name)
	}
}
