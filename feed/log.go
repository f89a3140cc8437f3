package feed

import (
	"fmt"
	"log"
)

func debugf(format string, args ...interface{}) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...interface{}) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...interface{}) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
