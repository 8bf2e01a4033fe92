package cli

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
	"github.com/njprem/BizSuite_BackEnd/internal/importer"
	"github.com/njprem/BizSuite_BackEnd/internal/repository/ports"
	"github.com/njprem/BizSuite_BackEnd/internal/service"
)

type memClients struct {
	rows map[string]*domain.Client
}

func (m *memClients) FindByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.Client, error) {
	if c, ok := m.rows[tenantID.String()+"/"+email]; ok {
		return c, nil
	}
	return nil, sql.ErrNoRows
}

func (m *memClients) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	c.ID = uuid.New()
	m.rows[c.TenantID.String()+"/"+c.Email] = c
	return c, nil
}

type memStorage struct {
	objects map[string]string
}

func (m *memStorage) Download(ctx context.Context, bucket, objectName string) (io.ReadCloser, error) {
	body, ok := m.objects[bucket+"/"+objectName]
	if !ok {
		return nil, errors.New("object not found")
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

type harness struct {
	clients  *memClients
	storage  *memStorage
	connects int
}

func newHarness() *harness {
	return &harness{
		clients: &memClients{rows: map[string]*domain.Client{}},
		storage: &memStorage{objects: map[string]string{}},
	}
}

func (h *harness) connector(ctx context.Context) (*Runtime, error) {
	h.connects++
	pipeline := importer.NewPipeline(importer.NewRegistry(), ports.Store{Clients: h.clients})
	return &Runtime{
		Imports: service.NewImportService(pipeline, nil, service.ImportServiceConfig{}),
		Storage: h.storage,
		Bucket:  "imports",
		Close:   func() {},
	}, nil
}

func execute(t *testing.T, connector Connector, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(connector)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRunImportsLocalFile(t *testing.T) {
	h := newHarness()
	tenantID := uuid.New()
	path := filepath.Join(t.TempDir(), "clients.csv")
	if err := os.WriteFile(path, []byte("email;name\nfoo@bar.com;Foo\nnotanemail;Bar\n"), 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	out, err := execute(t, h.connector, "run", "--type", "clients", "--tenant", tenantID.String(), "--file", path, "--delimiter", "semicolon")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var result domain.ImportResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if result.Imported != 1 || result.Failed != 1 || result.Errors[0] != "row 3: invalid email: notanemail" {
		t.Fatalf("unexpected result %+v", result)
	}
	if _, ok := h.clients.rows[tenantID.String()+"/foo@bar.com"]; !ok {
		t.Fatalf("client not stored under tenant")
	}
}

func TestRunStrictFailsOnRowErrors(t *testing.T) {
	h := newHarness()
	path := filepath.Join(t.TempDir(), "clients.csv")
	_ = os.WriteFile(path, []byte("email\nnotanemail\n"), 0o600)

	_, err := execute(t, h.connector, "run", "-t", "clients", "--tenant", uuid.NewString(), "-f", path, "--strict")
	if err == nil || !strings.Contains(err.Error(), "1 of 1 rows failed") {
		t.Fatalf("expected strict failure, got %v", err)
	}
}

func TestRunImportsFromObjectStorage(t *testing.T) {
	h := newHarness()
	tenantID := uuid.New()
	h.storage.objects["imports/salon-a/clients.csv"] = "email\nama@salon.example\n"

	out, err := execute(t, h.connector, "run", "-t", "clients", "--tenant", tenantID.String(), "--object", "salon-a/clients.csv")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, `"imported": 1`) {
		t.Fatalf("unexpected output %s", out)
	}

	if _, err := execute(t, h.connector, "run", "-t", "clients", "--tenant", tenantID.String(), "--object", "missing.csv"); err == nil {
		t.Fatalf("expected download error")
	}
}

func TestRunRejectsBadInvocations(t *testing.T) {
	h := newHarness()
	path := filepath.Join(t.TempDir(), "x.csv")
	_ = os.WriteFile(path, []byte("email\na@b.io\n"), 0o600)

	cases := map[string][]string{
		"bad tenant":       {"run", "-t", "clients", "--tenant", "nope", "-f", path},
		"both sources":     {"run", "-t", "clients", "--tenant", uuid.NewString(), "-f", path, "--object", "x.csv"},
		"no source":        {"run", "-t", "clients", "--tenant", uuid.NewString()},
		"bad delimiter":    {"run", "-t", "clients", "--tenant", uuid.NewString(), "-f", path, "--delimiter", "::"},
		"unknown type":     {"run", "-t", "invoices", "--tenant", uuid.NewString(), "-f", path},
		"missing tenant":   {"run", "-t", "clients", "-f", path},
		"missing csv file": {"run", "-t", "clients", "--tenant", uuid.NewString(), "-f", path + ".gone"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := execute(t, h.connector, args...); err == nil {
				t.Fatalf("expected error for %v", args)
			}
		})
	}
	if len(h.clients.rows) != 0 {
		t.Fatalf("no rows should be stored")
	}
}

func TestRunUnknownTypeIsImportError(t *testing.T) {
	h := newHarness()
	path := filepath.Join(t.TempDir(), "x.csv")
	_ = os.WriteFile(path, []byte("email\na@b.io\n"), 0o600)

	_, err := execute(t, h.connector, "run", "-t", "invoices", "--tenant", uuid.NewString(), "-f", path)
	if !errors.Is(err, service.ErrImportUnknownType) {
		t.Fatalf("expected ErrImportUnknownType, got %v", err)
	}
}

func TestTypesAndTemplateRunOffline(t *testing.T) {
	h := newHarness()

	out, err := execute(t, h.connector, "types")
	if err != nil {
		t.Fatalf("types: %v", err)
	}
	for _, want := range []string{"clients", "appointments", "newsletter", "client_email"} {
		if !strings.Contains(out, want) {
			t.Fatalf("types output missing %q:\n%s", want, out)
		}
	}

	out, err = execute(t, h.connector, "template", "--type", "clients")
	if err != nil {
		t.Fatalf("template: %v", err)
	}
	if !strings.HasPrefix(out, "email,name,") {
		t.Fatalf("unexpected template %q", out)
	}
	if h.connects != 0 {
		t.Fatalf("offline commands must not connect, got %d", h.connects)
	}
}

func TestUserCreateValidatesTenantBeforeConnecting(t *testing.T) {
	h := newHarness()
	_, err := execute(t, h.connector, "user", "create", "--email", "a@b.io", "--password", "Str0ng!Password", "--tenant", "nope")
	if err == nil || !strings.Contains(err.Error(), "invalid --tenant") {
		t.Fatalf("expected tenant error, got %v", err)
	}
	if h.connects != 0 {
		t.Fatalf("should not connect on invalid input")
	}
}
