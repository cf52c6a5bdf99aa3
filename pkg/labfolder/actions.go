package labfolder

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// patchOp is a single RFC 6902 JSON Patch operation.
type patchOp struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value string `json:"value"`
}

// SetOwner transfers ownership of a folder or project to newOwner. The new
// owner is addressed by group-membership id, so it must be a user taken from
// a group tree, typically via MemberByEmail on the active group. Entries
// cannot change owner; their author is fixed.
func (c *Client) SetOwner(ctx context.Context, record Record, newOwner User) error {
	if err := c.checkLoggedIn(); err != nil {
		return err
	}

	kind := record.Kind()
	if !ownerTransferable[kind] {
		return fmt.Errorf("%w: cannot set owner of %s", ErrUnsupportedKind, kind)
	}
	if err := checkMembership(newOwner); err != nil {
		return err
	}

	patch := []patchOp{{
		Op:    "replace",
		Path:  "/owner_id",
		Value: newOwner.GroupMembershipID,
	}}
	err := c.do(ctx, apiRequest{
		method:      http.MethodPatch,
		path:        "/" + kind.collection() + "/" + url.PathEscape(record.attrs().ID),
		body:        patch,
		contentType: contentTypeJSONPatch,
		status:      http.StatusOK,
	}, nil)
	if err != nil {
		return err
	}

	c.logger.Info("transferred ownership",
		"record", recordString(kind, record.attrs()),
		"new_owner", newOwner.String(),
	)
	return nil
}

type pdfExportSettings struct {
	PreserveEntryLayout bool `json:"preserve_entry_layout"`
}

type pdfExportRequest struct {
	DownloadFilename string              `json:"download_filename"`
	Settings         pdfExportSettings   `json:"settings"`
	Content          map[string][]string `json:"content"`
}

// ExportPDF queues an asynchronous PDF export of a project or an entry. A
// nil error means the server accepted the job, not that the PDF exists yet;
// the finished file appears in the web application's export area. Folders
// cannot be exported.
func (c *Client) ExportPDF(ctx context.Context, record Record) error {
	if err := c.checkLoggedIn(); err != nil {
		return err
	}

	kind := record.Kind()
	if !pdfExportable[kind] {
		return fmt.Errorf("%w: cannot export %s as PDF", ErrUnsupportedKind, kind)
	}

	id := record.attrs().ID
	body := pdfExportRequest{
		DownloadFilename: fmt.Sprintf("%s_%s", kind.titled(), id),
		Settings:         pdfExportSettings{PreserveEntryLayout: true},
		Content: map[string][]string{
			string(kind) + "_ids": {id},
		},
	}
	err := c.do(ctx, apiRequest{
		method: http.MethodPost,
		path:   "/exports/pdf",
		body:   body,
		status: http.StatusAccepted,
	}, nil)
	if err != nil {
		return err
	}

	c.logger.Info("queued pdf export", "record", recordString(kind, record.attrs()))
	return nil
}
