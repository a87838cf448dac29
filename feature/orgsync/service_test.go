package orgsync

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"dirsync/core/apperr"
	"dirsync/core/directory"
	"dirsync/core/inventory"
	"dirsync/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDirectory serves canned member records.
type fakeDirectory struct {
	members []directory.Member
	listErr error
	closed  bool
}

func (f *fakeDirectory) ListMembers(ctx context.Context, dn string) ([]directory.Member, error) {
	return f.members, f.listErr
}

func (f *fakeDirectory) BaseOU() string { return directory.DefaultBaseOU }

func (f *fakeDirectory) Close() error {
	f.closed = true
	return nil
}

// fakeInventory is an in-memory JSS serving XML over httptest.
type fakeInventory struct {
	mu          sync.Mutex
	collections map[string][]string
	mutations   []string
	malformed   map[string]bool
	reject      map[string]int
}

func newFakeInventory(departments, buildings []string) *fakeInventory {
	return &fakeInventory{
		collections: map[string][]string{"departments": departments, "buildings": buildings},
		malformed:   map[string]bool{},
		reject:      map[string]int{},
	}
}

func (f *fakeInventory) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/JSSResource/"), "/")
	collection := parts[0]
	element := strings.TrimSuffix(collection, "s")

	switch r.Method {
	case http.MethodGet:
		if f.malformed[collection] {
			_, _ = w.Write([]byte("<" + collection + "><" + element + ">"))
			return
		}
		var b strings.Builder
		b.WriteString("<" + collection + ">")
		for _, name := range f.collections[collection] {
			b.WriteString("<" + element + "><name>" + name + "</name></" + element + ">")
		}
		b.WriteString("</" + collection + ">")
		_, _ = w.Write([]byte(b.String()))
	case http.MethodPost:
		body, _ := io.ReadAll(r.Body)
		name := strings.TrimSuffix(strings.TrimPrefix(string(body), "<"+element+"><name>"), "</name></"+element+">")
		f.mutations = append(f.mutations, "create "+element+" "+name)
		if code, ok := f.reject[name]; ok {
			w.WriteHeader(code)
			return
		}
		f.collections[collection] = append(f.collections[collection], name)
		w.WriteHeader(http.StatusCreated)
	case http.MethodDelete:
		name := parts[len(parts)-1]
		f.mutations = append(f.mutations, "delete "+element+" "+name)
		if code, ok := f.reject[name]; ok {
			w.WriteHeader(code)
			return
		}
		kept := f.collections[collection][:0]
		for _, existing := range f.collections[collection] {
			if existing != name {
				kept = append(kept, existing)
			}
		}
		f.collections[collection] = kept
	}
}

func members(records ...map[string][]string) []directory.Member {
	out := make([]directory.Member, 0, len(records))
	for _, attrs := range records {
		out = append(out, directory.Member{Attributes: attrs})
	}
	return out
}

func newTestService(t *testing.T, dir *fakeDirectory, inv *fakeInventory) (*Service, *bytes.Buffer) {
	t.Helper()

	server := httptest.NewServer(inv)
	t.Cleanup(server.Close)

	out := &bytes.Buffer{}
	client := inventory.NewClient(inventory.Config{URL: server.URL, Username: "u", Password: "p"}, out, nil)
	connect := func() (DirectoryReader, error) { return dir, nil }

	return NewService(connect, client, out, nil), out
}

func TestRun_Scenario(t *testing.T) {
	dir := &fakeDirectory{members: members(
		map[string][]string{"department": {"Sales"}, "physicalDeliveryOfficeName": {"HQ"}},
		map[string][]string{"department": {"Engineering"}},
		map[string][]string{"department": {"Sales"}, "physicalDeliveryOfficeName": {"Annex"}},
	)}
	inv := newFakeInventory([]string{"Engineering", "Legacy"}, []string{"HQ", "Closed"})

	svc, out := newTestService(t, dir, inv)
	report, err := svc.Run(context.Background(), reconcile.ReconcileOptions{})
	require.NoError(t, err)

	assert.True(t, dir.closed)
	assert.Equal(t, []string{
		"create department Sales",
		"delete department Legacy",
		"create building Annex",
		"delete building Closed",
	}, inv.mutations)
	assert.Equal(t, 4, report.Result.Executed)

	assert.Equal(t, []string{"Engineering", "Sales"}, inv.collections["departments"])
	assert.Equal(t, []string{"HQ", "Annex"}, inv.collections["buildings"])

	assert.Equal(t, strings.Join([]string{
		"Reading accounts in OU=Staff,DC=yourorg,DC=corp in LDAP",
		"1 department(s) will be created and 1 department(s) will be deleted in the JSS",
		"1 building(s) will be created and 1 building(s) will be deleted in the JSS",
		"Creating department: Sales",
		"Deleting department: Legacy",
		"Creating building: Annex",
		"Deleting building: Closed",
		"Done",
	}, "\n")+"\n", out.String())
}

func TestRun_SecondRunIsNoop(t *testing.T) {
	dir := &fakeDirectory{members: members(
		map[string][]string{"department": {"Sales"}, "physicalDeliveryOfficeName": {"HQ"}},
	)}
	inv := newFakeInventory([]string{"Legacy"}, nil)

	svc, _ := newTestService(t, dir, inv)
	_, err := svc.Run(context.Background(), reconcile.ReconcileOptions{})
	require.NoError(t, err)

	inv.mutations = nil
	report, err := svc.Run(context.Background(), reconcile.ReconcileOptions{})
	require.NoError(t, err)
	assert.Empty(t, inv.mutations)
	assert.Empty(t, report.Plan.Actions)
}

func TestRun_MalformedListingAbortsBeforeMutation(t *testing.T) {
	dir := &fakeDirectory{members: members(
		map[string][]string{"department": {"Sales"}, "physicalDeliveryOfficeName": {"HQ"}},
	)}
	inv := newFakeInventory([]string{"Legacy"}, nil)
	inv.malformed["buildings"] = true

	svc, _ := newTestService(t, dir, inv)
	report, err := svc.Run(context.Background(), reconcile.ReconcileOptions{})
	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, apperr.ErrMalformedResponse)
	assert.Empty(t, inv.mutations)
}

func TestRun_RejectedMutationContinues(t *testing.T) {
	dir := &fakeDirectory{members: members(
		map[string][]string{"department": {"Sales"}, "physicalDeliveryOfficeName": {"HQ"}},
	)}
	inv := newFakeInventory([]string{"Ghost"}, nil)
	inv.reject["Ghost"] = http.StatusNotFound

	svc, _ := newTestService(t, dir, inv)
	report, err := svc.Run(context.Background(), reconcile.ReconcileOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"create department Sales",
		"delete department Ghost",
		"create building HQ",
	}, inv.mutations)
	assert.Equal(t, 2, report.Result.Executed)
	require.Len(t, report.Result.Failures, 1)
	assert.Equal(t, "Ghost", report.Result.Failures[0].Action.Name)
}

func TestRun_DryRun(t *testing.T) {
	dir := &fakeDirectory{members: members(
		map[string][]string{"department": {"Sales"}},
	)}
	inv := newFakeInventory([]string{"Legacy"}, nil)

	svc, _ := newTestService(t, dir, inv)
	report, err := svc.Run(context.Background(), reconcile.ReconcileOptions{DryRun: true})
	require.NoError(t, err)
	assert.Empty(t, inv.mutations)
	assert.Len(t, report.Plan.Actions, 2)
}

func TestRun_DirectoryErrors(t *testing.T) {
	t.Run("ConnectFailure", func(t *testing.T) {
		inv := newFakeInventory(nil, nil)
		server := httptest.NewServer(inv)
		defer server.Close()

		client := inventory.NewClient(inventory.Config{URL: server.URL}, nil, nil)
		connect := func() (DirectoryReader, error) {
			return nil, &apperr.AuthenticationError{System: "directory"}
		}

		_, err := NewService(connect, client, nil, nil).Run(context.Background(), reconcile.ReconcileOptions{})
		assert.ErrorIs(t, err, apperr.ErrAuthentication)
		assert.Equal(t, "Invalid credentials", apperr.Message(err))
	})

	t.Run("ListFailureStillCloses", func(t *testing.T) {
		dir := &fakeDirectory{listErr: errors.New("size limit exceeded")}
		inv := newFakeInventory([]string{"Legacy"}, nil)

		svc, _ := newTestService(t, dir, inv)
		_, err := svc.Run(context.Background(), reconcile.ReconcileOptions{})
		require.Error(t, err)
		assert.True(t, dir.closed)
		assert.Empty(t, inv.mutations)
	})
}

func TestCollectionResource_Kind(t *testing.T) {
	assert.Equal(t, "department", NewDepartmentResource(nil).Kind())
	assert.Equal(t, "building", NewBuildingResource(nil).Kind())
}
