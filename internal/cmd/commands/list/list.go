// Package list implements the three listing commands: projects, folders,
// and entries. They share flags and the owner-resolution flow.
package list

import (
	"context"

	"github.com/eln-tools/labfolder-go/internal/cmd/base"
	"github.com/eln-tools/labfolder-go/pkg/labfolder"
)

// listFlags are the flags shared by the listing commands.
type listFlags struct {
	base.SessionFlags

	owner string
	limit int
}

func (lf *listFlags) register(f *base.FlagSet) {
	lf.SessionFlags.Register(f)
	f.StringVar(
		&lf.owner, "owner", "",
		"Email of the record owner. Defaults to the logged-in user. "+
			"Resolving an email requires a group, so set -group too.",
	)
	f.IntVar(
		&lf.limit, "limit", 0,
		"Maximum number of records to fetch. 0 fetches everything.",
	)
}

// resolveOwner turns the -owner email into a user from the group tree. A nil
// user means the session user, with no group lookup needed.
func resolveOwner(ctx context.Context, sess *base.Session, email string) (*labfolder.User, error) {
	if email == "" {
		return nil, nil
	}
	if _, err := sess.SelectGroup(ctx); err != nil {
		return nil, err
	}
	member, err := sess.Member(email)
	if err != nil {
		return nil, err
	}
	return &member, nil
}
