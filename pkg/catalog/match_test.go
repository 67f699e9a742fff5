package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesFacet_AtLeastInteger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		key      string
		item     string
		selected string
		want     bool
	}{
		{name: "cores above threshold", key: "cores", item: "16", selected: "8", want: true},
		{name: "cores equal threshold", key: "cores", item: "8", selected: "8", want: true},
		{name: "cores below threshold", key: "cores", item: "4", selected: "8", want: false},
		{name: "threads with suffix text", key: "threads", item: "32 потока", selected: "24", want: true},
		{name: "memory slots localized", key: "memorySlots", item: "4 слота", selected: "2 слота", want: true},
		{name: "memory slots below", key: "memorySlots", item: "2 слота", selected: "4 слота", want: false},
		{name: "sata ports", key: "sataPorts", item: "6 портов", selected: "4 порта", want: true},
		{name: "m2 slots", key: "m2Slots", item: "3 слота", selected: "5 слотов", want: false},
		{name: "fans with plus sign", key: "fansIncluded", item: "4+ вентиляторов", selected: "3 вентилятора", want: true},
		{name: "power wattage", key: "power", item: "850W", selected: "650W", want: true},
		{name: "power below", key: "power", item: "450W", selected: "650W", want: false},
		{name: "item not numeric", key: "cores", item: "много", selected: "8", want: false},
		{name: "selected not numeric", key: "cores", item: "8", selected: "???", want: false},
		{name: "both empty", key: "cores", item: "", selected: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MatchesFacet(tt.key, tt.item, tt.selected))
		})
	}
}

func TestMatchesFacet_AtLeastCapacity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		key      string
		item     string
		selected string
		want     bool
	}{
		{name: "TB beats GB", key: "storageCapacity", item: "1 TB", selected: "512 GB", want: true},
		{name: "GB below GB", key: "storageCapacity", item: "256 GB", selected: "512 GB", want: false},
		{name: "equal capacity", key: "memoryCapacity", item: "32 GB", selected: "32 GB", want: true},
		{name: "fractional TB", key: "storageCapacity", item: "1.5 TB", selected: "1 TB", want: true},
		{name: "TB vs larger TB", key: "storageCapacity", item: "2 TB", selected: "4 TB", want: false},
		{name: "lowercase units", key: "storageCapacity", item: "2 tb", selected: "1000 gb", want: true},
		{name: "unitless numbers", key: "memoryCapacity", item: "64", selected: "32", want: true},
		{name: "unparsable item", key: "memoryCapacity", item: "нет данных", selected: "8 GB", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MatchesFacet(tt.key, tt.item, tt.selected))
		})
	}
}

func TestMatchesFacet_RangeBucket(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		key      string
		item     string
		selected string
		want     bool
	}{
		{name: "from bucket inside", key: "frequency", item: "3.8 GHz", selected: "от 3.5 GHz", want: true},
		{name: "from bucket boundary", key: "frequency", item: "3.5 GHz", selected: "от 3.5 GHz", want: true},
		{name: "up-to bucket outside", key: "frequency", item: "3.8 GHz", selected: "до 3.5 GHz", want: false},
		{name: "up-to bucket inside", key: "frequency", item: "2.9 GHz", selected: "до 3.0 GHz", want: true},
		{name: "range inside", key: "frequency", item: "3.8 GHz", selected: "3.0-4.0 GHz", want: true},
		{name: "range lower boundary", key: "gpuClock", item: "1500 MHz", selected: "1500-1800 MHz", want: true},
		{name: "range upper boundary", key: "gpuClock", item: "1800 MHz", selected: "1500-1800 MHz", want: true},
		{name: "range outside", key: "memoryClock", item: "21000 MHz", selected: "16000-20000 MHz", want: false},
		{name: "fan speed range", key: "fanSpeed", item: "1200 RPM", selected: "1000-1500 RPM", want: true},
		{name: "unknown bucket shape", key: "frequency", item: "3.8 GHz", selected: "примерно 3.5", want: false},
		{name: "unparsable item value", key: "frequency", item: "быстро", selected: "от 3.5 GHz", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MatchesFacet(tt.key, tt.item, tt.selected))
		})
	}
}

func TestMatchesFacet_SubstringFallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		key      string
		item     string
		selected string
		want     bool
	}{
		{name: "substring match", key: "chipset", item: "Intel: Z790", selected: "Z790", want: true},
		{name: "case-insensitive", key: "chipset", item: "intel: z790", selected: "Z790", want: true},
		{name: "exact equality", key: "memoryType", item: "GDDR6", selected: "GDDR6", want: true},
		{name: "no containment", key: "memoryType", item: "GDDR6", selected: "GDDR6X", want: false},
		{name: "socket spacing", key: "socket", item: "LGA 1700", selected: "LGA 1700", want: true},
		// Empty selected values match everything; substring-of-everything
		// semantics, kept as-is.
		{name: "empty selected matches all", key: "chipset", item: "AMD: B650", selected: "", want: true},
		{name: "empty item only matches empty", key: "chipset", item: "", selected: "Z790", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MatchesFacet(tt.key, tt.item, tt.selected))
		})
	}
}

func TestRuleForKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, AtLeastInteger, RuleForKey("cores"))
	assert.Equal(t, AtLeastInteger, RuleForKey("power"))
	assert.Equal(t, AtLeastCapacity, RuleForKey("storageCapacity"))
	assert.Equal(t, RangeBucket, RuleForKey("maxFrequency"))
	assert.Equal(t, SubstringCI, RuleForKey("chipset"))
	assert.Equal(t, SubstringCI, RuleForKey("unknownKey"))
}

func TestLeadingNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{in: "3.8 GHz", want: 3.8, wantOK: true},
		{in: "до 1500 MHz", want: 1500, wantOK: true},
		{in: " 2400", want: 2400, wantOK: true},
		{in: "1.5 TB", want: 1.5, wantOK: true},
		{in: "3. GHz", want: 3, wantOK: true},
		{in: "no digits", wantOK: false},
		{in: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, ok := leadingNumber(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestCapacityGB(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{in: "1 TB", want: 1000, wantOK: true},
		{in: "1.5 TB", want: 1500, wantOK: true},
		{in: "512 GB", want: 512, wantOK: true},
		{in: "512", want: 512, wantOK: true},
		{in: "2 tb", want: 2000, wantOK: true},
		{in: "TB", wantOK: false},
		{in: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, ok := capacityGB(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
