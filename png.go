package pngmsg

import "fmt"

// AppendChunk adds c at the end of the sequence. Nothing is deduplicated;
// the container may hold any number of chunks with the same type.
func (p *Png) AppendChunk(c Chunk) {
	p.chunks = append(p.chunks, c)
}

// ChunkByType returns the first chunk, in stored order, whose type string
// equals typeStr. The returned pointer aliases the container; it is
// invalidated by AppendChunk and RemoveChunk.
func (p *Png) ChunkByType(typeStr string) (*Chunk, bool) {
	for i := range p.chunks {
		if p.chunks[i].chunkType.String() == typeStr {
			return &p.chunks[i], true
		}
	}
	return nil, false
}

// RemoveChunk removes and returns the first chunk whose type string equals
// typeStr. Later chunks of the same type are kept; repeated calls peel them
// off one at a time. Removal of an absent type fails with ErrChunkNotFound.
func (p *Png) RemoveChunk(typeStr string) (Chunk, error) {
	for i := range p.chunks {
		if p.chunks[i].chunkType.String() == typeStr {
			c := p.chunks[i]
			p.chunks = append(p.chunks[:i], p.chunks[i+1:]...)
			return c, nil
		}
	}
	return Chunk{}, fmt.Errorf("%w: %q", ErrChunkNotFound, typeStr)
}

// Chunks returns the chunk sequence in stored order. The slice is a
// read-only view; callers must not modify it.
func (p *Png) Chunks() []Chunk {
	return p.chunks
}
