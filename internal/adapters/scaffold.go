package adapters

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"quantum/internal/ports"
	"quantum/internal/shared"
)

// ScaffoldAdapter lays out new package skeletons and finds package
// sources.
type ScaffoldAdapter struct{}

func NewScaffoldAdapter() ScaffoldAdapter {
	return ScaffoldAdapter{}
}

const manifestTemplate = `[package]
name = "%s"
version = "0.1.0"
edition = "2024"

[dependencies]
`

const mainTemplate = `// %s - Main module
//
// This is the entry point for your Quantum smart contract.

module %s::main {
    use silver::object::{Self, UID};
    use silver::transfer;
    use silver::tx_context::{Self, TxContext};

    /// Example object
    struct ExampleObject has key, store {
        id: UID,
        value: u64,
    }

    /// Create a new example object
    public fun create(value: u64, ctx: &mut TxContext): ExampleObject {
        ExampleObject {
            id: object::new(ctx),
            value,
        }
    }

    /// Transfer an example object
    public fun transfer_object(obj: ExampleObject, recipient: address) {
        transfer::transfer(obj, recipient)
    }

    /// Get the value of an example object
    public fun get_value(obj: &ExampleObject): u64 {
        obj.value
    }
}
`

const gitignoreTemplate = `/build
/target
*.swp
*.swo
*~
.DS_Store
`

const readmeTemplate = `# %s

A Quantum smart contract package.

## Building

` + "```bash\nquantum build\n```" + `

## Testing

` + "```bash\nquantum test\n```" + `

## Publishing

` + "```bash\nquantum publish\n```" + `
`

func (a ScaffoldAdapter) Create(name string, dir string) error {
	srcDir := filepath.Join(dir, "src")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create package directories").
			WithCause(err)
	}
	files := map[string]string{
		filepath.Join(dir, ManifestFileName): fmt.Sprintf(manifestTemplate, name),
		filepath.Join(srcDir, "main.qm"):     fmt.Sprintf(mainTemplate, name, name),
		filepath.Join(dir, ".gitignore"):     gitignoreTemplate,
		filepath.Join(dir, "README.md"):      fmt.Sprintf(readmeTemplate, name),
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write " + filepath.Base(path)).
				WithCause(err)
		}
	}
	return nil
}

// SourceFiles walks root/src and returns every .qm file as a
// root-relative path.
func (a ScaffoldAdapter) SourceFiles(root string) ([]string, error) {
	srcDir := filepath.Join(root, "src")
	if _, err := os.Stat(srcDir); err != nil {
		return nil, shared.NotFoundErr("source directory not found: "+srcDir, err)
	}
	var files []string
	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".qm") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan source directory").
			WithCause(err)
	}
	return files, nil
}

var _ ports.ScaffoldPort = ScaffoldAdapter{}
