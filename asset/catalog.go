/*
Package asset discovers the raw material for ROM8 files, ROM images, face
artwork, key names and hitbox markup, and turns it into ROM8 files.

Files are grouped by the model number found in their path, such as CY-237 or
EY018, and classified into roles by their name.
*/
package asset

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/hashicorp/go-hclog"
)

// Role is the part a file plays in building a ROM8 file
type Role string

// These are the recognised roles
const (
	RoleROM      Role = "rom"
	RoleROMDump  Role = "romDump"
	RoleFaceSVG  Role = "faceSVG"
	RoleKeyNames Role = "officialKeyNames"
	RoleHitboxes Role = "officialHitboxAttrib"
	RoleIgnore   Role = "ignore"
	RoleUnknown  Role = "unknown"
)

// Identify classifies a file by its name
func Identify(path string) Role {
	name := filepath.Base(path)
	switch {
	case name == "keylog.json":
		return RoleKeyNames
	case strings.HasSuffix(name, ".svg"):
		return RoleFaceSVG
	case name == "face.html":
		return RoleHitboxes
	case strings.HasSuffix(name, ".bin"):
		return RoleROM
	case strings.HasSuffix(name, ".dump"):
		return RoleROMDump
	case name == "index.html":
		return RoleIgnore
	default:
		return RoleUnknown
	}
}

var modelPattern = regexp.MustCompile(`[EC]Y-?[0-9]{3}`)

// ModelID returns the model number found in path with any hyphen removed
func ModelID(path string) (string, bool) {
	m := modelPattern.FindString(path)
	if m == "" {
		return "", false
	}
	return strings.ReplaceAll(m, "-", ""), true
}

// Asset holds the contents of each file found for a model
type Asset map[Role][]byte

// Has reports whether the asset has a file for role
func (a Asset) Has(role Role) bool {
	_, ok := a[role]
	return ok
}

// Catalog maps model numbers to their assets
type Catalog struct {
	assets map[string]Asset
	logger hclog.Logger
}

// NewCatalog returns an empty Catalog. Diagnostics are sent to logger, which
// may be nil
func NewCatalog(logger hclog.Logger) *Catalog {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Catalog{
		assets: make(map[string]Asset),
		logger: logger,
	}
}

// Add stores b as the file for role of model id, replacing any previous one
func (c *Catalog) Add(id string, role Role, b []byte) {
	a, ok := c.assets[id]
	if !ok {
		a = make(Asset)
		c.assets[id] = a
	}
	a[role] = b
}

// Asset returns the asset for model id
func (c *Catalog) Asset(id string) (Asset, bool) {
	a, ok := c.assets[id]
	return a, ok
}

// IDs returns the model numbers in the catalog in sorted order
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.assets))
	for id := range c.assets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of models in the catalog
func (c *Catalog) Len() int {
	return len(c.assets)
}

// Scan walks root adding every file whose path carries a model number
func (c *Catalog) Scan(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		id, ok := ModelID(path)
		if !ok {
			return nil
		}

		role := Identify(path)
		if role == RoleUnknown {
			// Artwork is sometimes exported without an extension
			mime, err := mimetype.DetectFile(path)
			if err != nil {
				return err
			}
			if mime.Is("image/svg+xml") {
				role = RoleFaceSVG
			}
		}

		switch role {
		case RoleIgnore:
			return nil
		case RoleUnknown:
			c.logger.Warn("unknown file", "path", path)
			return nil
		}

		b, err := ioutil.ReadFile(path)
		if err != nil {
			return err
		}
		c.Add(id, role, b)

		return nil
	})
}
