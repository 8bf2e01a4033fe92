package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
	"github.com/njprem/BizSuite_BackEnd/internal/importer"
	"github.com/njprem/BizSuite_BackEnd/internal/service"
)

type runOptions struct {
	entityType string
	tenant     string
	file       string
	object     string
	delimiter  string
	strict     bool
}

// operator is the caller recorded for imports started from the CLI.
var operator = &domain.User{Email: "importctl@localhost", Role: domain.RoleSuperAdmin}

func newRunCmd(connector Connector) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Import one CSV file into a tenant",
		Example: `  importctl run --type clients --tenant 2b0f5c52-8d0e-4d84-9f0f-0d8c0b7b44a1 --file clients.csv
  importctl run --type services --tenant 2b0f5c52-8d0e-4d84-9f0f-0d8c0b7b44a1 --object salon-a/services.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, connector, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.entityType, "type", "t", "", "Entity type to import (see `importctl types`)")
	cmd.Flags().StringVar(&opts.tenant, "tenant", "", "Target tenant id")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Local CSV file")
	cmd.Flags().StringVar(&opts.object, "object", "", "Object name in the MinIO imports bucket")
	cmd.Flags().StringVar(&opts.delimiter, "delimiter", "", "Field delimiter: a single character, comma, semicolon or tab")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit non-zero when any row fails")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("tenant")
	cmd.MarkFlagsMutuallyExclusive("file", "object")
	cmd.MarkFlagsOneRequired("file", "object")
	return cmd
}

func runImport(cmd *cobra.Command, connector Connector, opts runOptions) error {
	tenantID, err := uuid.Parse(opts.tenant)
	if err != nil {
		return fmt.Errorf("invalid --tenant: %w", err)
	}
	req := service.ImportRequest{Type: opts.entityType, TenantID: tenantID}
	if opts.delimiter != "" {
		if req.Delimiter, err = importer.ParseDelimiter(opts.delimiter); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	rt, err := connector(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	limit := rt.Imports.MaxFileBytes() + 1
	switch {
	case opts.file != "":
		f, err := os.Open(opts.file)
		if err != nil {
			return err
		}
		defer f.Close()
		if req.Contents, err = io.ReadAll(io.LimitReader(f, limit)); err != nil {
			return err
		}
		req.Filename = filepath.Base(opts.file)
	default:
		if rt.Storage == nil {
			return errors.New("--object requires MinIO to be configured")
		}
		body, err := rt.Storage.Download(ctx, rt.Bucket, opts.object)
		if err != nil {
			return fmt.Errorf("download %s/%s: %w", rt.Bucket, opts.object, err)
		}
		defer body.Close()
		if req.Contents, err = io.ReadAll(io.LimitReader(body, limit)); err != nil {
			return err
		}
		req.Filename = opts.object
	}
	if req.Contents == nil {
		req.Contents = []byte{}
	}

	result, err := rt.Imports.Import(ctx, operator, req)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return err
	}
	if opts.strict && !result.Success {
		return fmt.Errorf("%d of %d rows failed", result.Failed, result.Imported+result.Failed)
	}
	return nil
}
