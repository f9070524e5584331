package voxel

// CollisionChannel selects which blocks stop a trace.
type CollisionChannel uint8

const (
	ChannelVisibility CollisionChannel = 1 << iota
	ChannelCamera
	ChannelProjectile
)

const (
	EMPTY byte = iota
	GROUND
	ROCK
	FOLIAGE
	GLASS
)

// blockChannels lists the channels each block id blocks.
// Foliage hides things but lets shells through, glass is the other way round.
var blockChannels = map[byte]CollisionChannel{
	EMPTY:   0,
	GROUND:  ChannelVisibility | ChannelCamera | ChannelProjectile,
	ROCK:    ChannelVisibility | ChannelCamera | ChannelProjectile,
	FOLIAGE: ChannelVisibility | ChannelCamera,
	GLASS:   ChannelProjectile,
}

type Block struct {
	ID byte
}

func NewBlock(id byte) *Block {
	return &Block{ID: id}
}

func (b *Block) IsAir() bool {
	return b.ID == EMPTY
}

func (b *Block) Blocks(channel CollisionChannel) bool {
	if b == nil {
		return false
	}
	return blockChannels[b.ID]&channel != 0
}
