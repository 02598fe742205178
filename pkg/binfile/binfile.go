package binfile

import (
	"fmt"
	"io"
	"os"
	"runtime"

	bufra "github.com/avvmoto/buf-readerat"
	"github.com/golang/glog"
	"golang.org/x/sys/unix"
)

const readBufSize = 4 * 0x1000

// File is a read-only binary image. The contents are mmap'd when the
// kernel allows it, which keeps the bytes page-aligned; otherwise they
// are pulled into memory through a buffered reader (empty files, procfs
// entries and pipes have no mappable size).
type File struct {
	path   string
	data   []byte
	mapped bool
}

func Open(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("open binary %s: %w", path, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat binary %s: %w", path, err)
	}

	this := &File{path: path}
	if size := stat.Size(); size > 0 {
		data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
		if err == nil {
			this.data = data
			this.mapped = true
			runtime.SetFinalizer(this, (*File).Close)
			return this, nil
		}
		glog.V(2).Infof("mmap %s: %v, falling back to buffered read", path, err)
	}

	if this.data, err = readAll(f, stat.Size()); err != nil {
		return nil, fmt.Errorf("read binary %s: %w", path, err)
	}
	return this, nil
}

func (f *File) Data() []byte { return f.data }
func (f *File) Size() int64  { return int64(len(f.data)) }
func (f *File) Path() string { return f.path }
func (f *File) Mapped() bool { return f.mapped }

// Close releases the mapping. Views borrowed from Data must not outlive
// it. Safe to call more than once.
func (f *File) Close() error {
	if !f.mapped {
		f.data = nil
		return nil
	}
	data := f.data
	f.data = nil
	f.mapped = false
	return unix.Munmap(data)
}

func readAll(f *os.File, size int64) ([]byte, error) {
	if size <= 0 {
		return io.ReadAll(f)
	}
	r := io.NewSectionReader(bufra.NewBufReaderAt(f, readBufSize), 0, size)
	return io.ReadAll(r)
}
