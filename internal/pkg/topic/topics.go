package topic

import "Verdure/internal/model"

// dailyTopics 每个分类的固定话题表，15 条一轮
var dailyTopics = map[model.Category][]string{
	model.CategoryPlants: {
		"Monstera Deliciosa Care Guide",
		"Snake Plant Benefits and Care",
		"Pothos Plant Propagation",
		"ZZ Plant Care Tips",
		"Fiddle Leaf Fig Care",
		"Peace Lily Care Guide",
		"Aloe Vera Plant Benefits",
		"Spider Plant Care",
		"Philodendron Care Tips",
		"Calathea Plant Care",
		"Bamboo Plant Care",
		"Succulent Care Guide",
		"Cactus Care Tips",
		"Fern Plant Care",
		"Palm Tree Care",
	},
	model.CategoryFlowers: {
		"Rose Care and Maintenance",
		"Orchid Care Guide",
		"Tulip Growing Tips",
		"Sunflower Care",
		"Lavender Plant Care",
		"Daisy Flower Care",
		"Peony Care Guide",
		"Hydrangea Care Tips",
		"Daffodil Growing Guide",
		"Iris Flower Care",
		"Carnation Care",
		"Chrysanthemum Care",
		"Azalea Care Guide",
		"Camellia Care Tips",
		"Gardenia Care",
	},
	model.CategoryFruits: {
		"Strawberry Growing Guide",
		"Tomato Plant Care",
		"Citrus Tree Care",
		"Apple Tree Maintenance",
		"Blueberry Bush Care",
		"Raspberry Plant Care",
		"Grape Vine Care",
		"Peach Tree Care",
		"Cherry Tree Care",
		"Plum Tree Care",
		"Pear Tree Care",
		"Fig Tree Care",
		"Pomegranate Tree Care",
		"Avocado Tree Care",
		"Mango Tree Care",
	},
	model.CategoryGardening: {
		"Organic Gardening Tips",
		"Container Gardening Guide",
		"Indoor Gardening Tips",
		"Garden Soil Preparation",
		"Fertilizer Guide",
		"Pest Control Methods",
		"Pruning Techniques",
		"Seed Starting Guide",
		"Garden Planning Tips",
		"Watering Techniques",
		"Composting Guide",
		"Garden Tools Guide",
		"Seasonal Gardening Tips",
		"Vertical Gardening",
		"Herb Garden Care",
	},
	model.CategoryCare: {
		"Plant Watering Guide",
		"Light Requirements for Plants",
		"Temperature Control for Plants",
		"Humidity for Indoor Plants",
		"Potting Mix Guide",
		"Repotting Plants",
		"Plant Disease Prevention",
		"Fertilizing Schedule",
		"Pruning Houseplants",
		"Plant Propagation Methods",
		"Seasonal Plant Care",
		"Plant Pest Management",
		"Root Rot Prevention",
		"Leaf Care Tips",
		"Plant Nutrition Guide",
	},
}

// TopicsFor 返回某分类的话题表副本
func TopicsFor(category model.Category) []string {
	src := dailyTopics[category]
	out := make([]string, len(src))
	copy(out, src)
	return out
}
