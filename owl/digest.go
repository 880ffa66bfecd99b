package owl

import (
	"github.com/minio/highwayhash"
)

var digestKey = []byte("owl2types-digest-0123456789ABCDE")

// digest fingerprints a raw ontology document so that the same content
// fetched from different locations is parsed only once per run.
func digest(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(digestKey)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}
