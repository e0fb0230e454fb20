// SPDX-License-Identifier: EPL-2.0

package bank

import (
	"io"
	"strings"
	"sync"

	"github.com/ik5/sfxmix/mixer"
)

// Decoder turns an encoded audio stream into a playback clip. The decoders
// under formats/ satisfy this interface.
type Decoder interface {
	Decode(r io.Reader) (*mixer.Clip, error)
}

// Registry maps format keys (e.g., "wav", "mp3", "ogg") to decoders.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

// Register binds a decoder to a format key. Keys are matched
// case-insensitively; a later registration replaces an earlier one.
func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[strings.ToLower(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[strings.ToLower(format)]
	return d, ok
}

func (r *Registry) Len() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return len(r.codecs)
}
