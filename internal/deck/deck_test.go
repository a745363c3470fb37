package deck

import (
	"sync"
	"testing"

	"github.com/lox/blackjack/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckComposition(t *testing.T) {
	for _, numDecks := range []int{1, 2, 6, 8} {
		d := NewDeck(numDecks, randutil.New(int64(numDecks)))
		require.Equal(t, 13*numDecks, d.Len())

		counts := map[Rank]int{}
		for _, r := range d.Cards() {
			counts[r]++
		}
		require.Len(t, counts, 13)
		for _, r := range Ranks {
			assert.Equal(t, numDecks, counts[r], "rank %s with %d decks", r, numDecks)
		}
	}
}

func TestNewDeckZeroDecks(t *testing.T) {
	d := NewDeck(0, randutil.New(1))
	assert.Equal(t, 0, d.Len())
	assert.Empty(t, d.Cards())
}

func TestNewDeckSeededOrderIsReproducible(t *testing.T) {
	a := NewDeck(6, randutil.New(99)).Cards()
	b := NewDeck(6, randutil.New(99)).Cards()
	assert.Equal(t, a, b)

	c := NewDeck(6, randutil.New(100)).Cards()
	assert.NotEqual(t, a, c)
}

func TestCardsReturnsCopy(t *testing.T) {
	d := NewDeck(1, randutil.New(5))
	cards := d.Cards()
	cards[0] = Rank(0)
	assert.True(t, d.Cards()[0].Valid())
}

func TestShoeWrapsAround(t *testing.T) {
	shoe := NewShoe(MustParseRanks("23A"))

	var got []Rank
	for i := 0; i < 7; i++ {
		got = append(got, shoe.Draw())
	}
	assert.Equal(t, MustParseRanks("23A23A2"), got)
	assert.Equal(t, uint64(7), shoe.Drawn())
	assert.Equal(t, 3, shoe.Len())
}

func TestShoeEmptyPanics(t *testing.T) {
	assert.Panics(t, func() { NewShoe(nil) })
}

func TestShoeConcurrentDrawsClaimDistinctPositions(t *testing.T) {
	const (
		workers   = 16
		perWorker = 13
	)
	d := NewDeck(workers, randutil.New(3))
	shoe := d.Shoe()

	var (
		mu     sync.Mutex
		counts = map[Rank]int{}
		wg     sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := map[Rank]int{}
			for i := 0; i < perWorker; i++ {
				local[shoe.Draw()]++
			}
			mu.Lock()
			for r, n := range local {
				counts[r] += n
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	// Exactly one full cycle was drawn, so every rank shows up once per deck.
	require.Equal(t, uint64(workers*perWorker), shoe.Drawn())
	for _, r := range Ranks {
		assert.Equal(t, workers, counts[r], "rank %s", r)
	}
}
