package item

import (
	"log"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/rs/xid"
)

var idGeneratorMutex sync.Mutex
var idGeneratorInstantiated bool
var idGenerator IDGenerator

// An IDGenerator assigns IDs to timeline items stored without one.
type IDGenerator interface {
	// Generate returns the next item ID.
	Generate() ID
}

// UseSequentialIDGenerator backs item ID generation with a process-wide
// counter. Sequential IDs keep tests deterministic.
func UseSequentialIDGenerator() {
	if idGeneratorInstantiated {
		log.Panic("cannot change id generator type after using it")
	}

	idGeneratorMutex.Lock()
	if idGeneratorInstantiated {
		log.Panic("cannot change id generator type after using it")
	}

	idGenerator = &sequentialIDGenerator{}
	idGeneratorInstantiated = true

	idGeneratorMutex.Unlock()
}

// UseParallelIDGenerator backs item ID generation with globally unique
// xids, safe for items produced from many goroutines at once. The IDs are
// no longer deterministic.
func UseParallelIDGenerator() {
	if idGeneratorInstantiated {
		log.Panic("cannot change id generator type after using it")
	}

	idGeneratorMutex.Lock()
	if idGeneratorInstantiated {
		log.Panic("cannot change id generator type after using it")
	}

	idGenerator = &parallelIDGenerator{}
	idGeneratorInstantiated = true

	idGeneratorMutex.Unlock()
}

// GetIDGenerator returns the generator the stores use for incoming items.
// The first use locks the choice in; it defaults to sequential.
func GetIDGenerator() IDGenerator {
	if idGeneratorInstantiated {
		return idGenerator
	}

	idGeneratorMutex.Lock()
	if idGeneratorInstantiated {
		idGeneratorMutex.Unlock()
		return idGenerator
	}

	idGenerator = &sequentialIDGenerator{}
	idGeneratorInstantiated = true
	idGeneratorMutex.Unlock()

	return idGenerator
}

type sequentialIDGenerator struct {
	nextID uint64
}

func (g *sequentialIDGenerator) Generate() ID {
	id := atomic.AddUint64(&g.nextID, 1)
	return ID(strconv.FormatUint(id, 10))
}

type parallelIDGenerator struct {
}

func (g *parallelIDGenerator) Generate() ID {
	return ID(xid.New().String())
}
