package domain

import (
	"strings"

	"github.com/google/uuid"
)

// DryRunPrefix marks identities fabricated by read-only stores.
const DryRunPrefix = "uid://"

func NewDryRunID() string { return DryRunPrefix + uuid.NewString() }

func IsDryRun(id string) bool { return strings.HasPrefix(id, DryRunPrefix) }
