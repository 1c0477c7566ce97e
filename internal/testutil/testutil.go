// Package testutil provides test helpers for modgen tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// WriteTree lays out tree under root. Keys are slash-separated relative
// paths; a key ending in "/" creates an empty directory.
func WriteTree(t *testing.T, fs afero.Fs, root string, tree map[string]string) {
	t.Helper()
	if err := writeTree(fs, root, tree); err != nil {
		t.Fatalf("failed to write tree under %s: %v", root, err)
	}
}

// ReadTree returns the tree under root in the WriteTree format.
func ReadTree(t *testing.T, fs afero.Fs, root string) map[string]string {
	t.Helper()
	tree := make(map[string]string)

	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if info.IsDir() {
			tree[rel+"/"] = ""
			return nil
		}

		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return err
		}
		tree[rel] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to read tree under %s: %v", root, err)
	}

	return tree
}

func writeTree(fs afero.Fs, root string, tree map[string]string) error {
	if err := fs.MkdirAll(root, 0o755); err != nil {
		return err
	}
	for rel, content := range tree {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			if err := fs.MkdirAll(path, 0o755); err != nil {
				return err
			}
			continue
		}
		if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

// ModuleTemplate returns a small tree shaped like the upstream module
// template, including the entries the fetcher strips.
func ModuleTemplate() map[string]string {
	return map[string]string{
		"README.md":   "# ModuleTemplate\n",
		".gitignore":  "vendor/\n",
		".git/HEAD":   "ref: refs/heads/master\n",
		".git/config": "[remote \"origin\"]\n\turl = https://github.com/mikopbx/ModuleTemplate.git\n",
		"LICENSE":     "GNU GENERAL PUBLIC LICENSE\n",
		"module.json": `{"moduleUniqueID": "ModuleTemplate", "name": "module-template"}` + "\n",
		"Lib/TemplateConf.php": "<?php\nnamespace Modules\\ModuleTemplate\\Lib;\n\n" +
			"class TemplateConf extends ConfigClass\n{\n}\n",
		"Models/ModuleTemplate.php": "<?php\nclass ModuleTemplate\n{\n" +
			"    protected $table = 'm_mod_tpl';\n    // module_template settings\n}\n",
		"App/Controllers/ModuleTemplateController.php": "<?php\nclass ModuleTemplateController\n{\n}\n",
		"public/assets/js/src/module-template-index.js": "const ModuleTemplateIndex = { $formObj: $('#module-template-form') };\n",
		"public/assets/css/module-template.css":         "#module-template-form { display: block; }\n",
		"Messages/en.php": "<?php\nreturn ['mod_tpl_Title' => 'Template', 'mod_tpl_Desc' => 'Template module'];\n",
	}
}

// TemplateCloner is a fetch.Cloner that lays out Tree instead of cloning.
type TemplateCloner struct {
	FS   afero.Fs
	Tree map[string]string

	// Err, when set, is returned without touching the filesystem.
	Err error

	// Calls records every clone request as "dir url".
	Calls []string
}

// Clone writes the configured tree into dir.
func (c *TemplateCloner) Clone(_ context.Context, dir, url string) error {
	c.Calls = append(c.Calls, dir+" "+url)
	if c.Err != nil {
		return c.Err
	}
	return writeTree(c.FS, dir, c.Tree)
}
