package builder

type House struct {
	Walls  int
	Doors  int
	Garage bool
}

type HouseBuilder struct {
	house House
}

func (b *HouseBuilder) Walls(n int) *HouseBuilder {
	b.house.Walls = n
	return b
}

func (b *HouseBuilder) Doors(n int) *HouseBuilder {
	b.house.Doors = n
	return b
}

func (b *HouseBuilder) WithGarage() *HouseBuilder {
	b.house.Garage = true
	return b
}

func (b *HouseBuilder) Build() House {
	return b.house
}
