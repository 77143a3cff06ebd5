package descriptor

import (
	"archive/zip"
	"fmt"
	"strings"

	"github.com/brandhill/scaloid/classfile"
)

// LoadJar reads every public class of a jar into a linked snapshot.
func LoadJar(path string) (*Snapshot, error) {
	return LoadJars([]string{path})
}

// LoadJars reads several jars into one snapshot. When the same class appears
// in more than one jar, the first occurrence wins.
func LoadJars(paths []string) (*Snapshot, error) {
	var classes []*Class
	for _, path := range paths {
		loaded, err := loadJarClasses(path)
		if err != nil {
			return nil, err
		}
		classes = append(classes, loaded...)
	}
	return NewSnapshot(classes), nil
}

func loadJarClasses(path string) ([]*Class, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open jar %s: %w", path, err)
	}
	defer r.Close()

	var classes []*Class
	for _, f := range r.File {
		if f.FileInfo().IsDir() || !strings.HasSuffix(f.Name, ".class") {
			continue
		}
		if strings.HasSuffix(f.Name, "module-info.class") || strings.HasPrefix(f.Name, "META-INF/") {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s in %s: %w", f.Name, path, err)
		}
		cf, err := classfile.Parse(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("parse %s in %s: %w", f.Name, path, err)
		}
		if !cf.AccessFlags.IsPublic() || cf.AccessFlags.IsSynthetic() || cf.AccessFlags.IsModule() {
			continue
		}

		c, err := FromClassFile(cf)
		if err != nil {
			return nil, fmt.Errorf("jar %s: %w", path, err)
		}
		classes = append(classes, c)
	}
	return classes, nil
}
