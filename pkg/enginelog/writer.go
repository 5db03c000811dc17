package enginelog

import "os"

func defaultWriter() *os.File {
	return os.Stderr
}
