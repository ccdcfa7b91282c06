// Package upload guarda en disco las imágenes subidas con el alta de producto.
package upload

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// maxNameAttempts acota los sufijos probados cuando dos subidas caen en el mismo milisegundo.
const maxNameAttempts = 100

// DiskStorage escribe los archivos en dir y los expone bajo publicPrefix.
type DiskStorage struct {
	dir          string
	publicPrefix string
	now          func() time.Time
}

// NewDiskStorage crea el directorio si no existe.
func NewDiskStorage(dir, publicPrefix string) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("upload: crear directorio %s: %w", dir, err)
	}
	return &DiskStorage{dir: dir, publicPrefix: publicPrefix, now: time.Now}, nil
}

// Save copia el archivo como <unix-millis><ext> y devuelve la ruta pública
// (p. ej. /uploads/1718000000000.jpg). Si el nombre ya existe usa
// <unix-millis>-<n><ext>; nunca sobrescribe un archivo previo.
func (s *DiskStorage) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("upload: abrir archivo: %w", err)
	}
	defer src.Close()

	dst, name, err := s.create(fh.Filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(filepath.Join(s.dir, name))
		return "", fmt.Errorf("upload: copiar: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("upload: cerrar destino: %w", err)
	}
	return path.Join(s.publicPrefix, name), nil
}

// Remove borra un archivo guardado a partir de su ruta pública. Un archivo
// inexistente no es error.
func (s *DiskStorage) Remove(publicPath string) error {
	name := path.Base(publicPath)
	if name == "." || name == "/" || !strings.HasPrefix(publicPath, s.publicPrefix) {
		return fmt.Errorf("upload: ruta fuera de %s: %q", s.publicPrefix, publicPath)
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("upload: borrar %s: %w", name, err)
	}
	return nil
}

// create abre el destino con O_EXCL para que dos subidas simultáneas no
// compartan archivo.
func (s *DiskStorage) create(original string) (*os.File, string, error) {
	base := strconv.FormatInt(s.now().UnixMilli(), 10)
	ext := filepath.Ext(original)

	name := base + ext
	for i := 1; i <= maxNameAttempts; i++ {
		f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, name, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", fmt.Errorf("upload: crear destino: %w", err)
		}
		name = base + "-" + strconv.Itoa(i) + ext
	}
	return nil, "", fmt.Errorf("upload: sin nombre libre para %s%s", base, ext)
}
