package model

// builtinRecipes ship with the application. They are never persisted and never
// removed; BuiltinRecipes hands out copies.
var builtinRecipes = []Recipe{
	{
		ID:          "pancakes",
		Name:        "Cloud-Soft Pancakes",
		Tag:         "Fluffy Japanese Pancakes",
		Description: "Tall, wobbly pancakes as soft as morning clouds.",
		Image:       "https://images.pexels.com/photos/376464/pexels-photo-376464.jpeg?auto=compress&cs=tinysrgb&w=800",
		Mood:        "Sweet | Cozy brunch | Weekend treat",
		Time:        "35 mins",
		Serves:      "2–3 spirits",
		IsDefault:   true,
		Ingredients: []string{
			"2 large eggs (yolks and whites separated)",
			"2 tbsp milk",
			"1/2 tsp vanilla extract",
			"3 tbsp cake flour (or very soft all-purpose flour)",
			"1/2 tsp baking powder",
			"2 tbsp sugar",
			"1 tsp lemon juice or vinegar",
			"Butter for the pan",
			"Maple syrup, whipped cream, and berries for serving",
		},
		Steps: []string{
			"In a small bowl, whisk egg yolks, milk, and vanilla until smooth.",
			"Sift in flour and baking powder. Gently whisk just until combined and silky. Do not overmix.",
			"In a clean bowl, beat egg whites with lemon juice. When bubbly, slowly add sugar and continue beating until you get glossy, medium-stiff peaks.",
			"Fold one spoonful of meringue into the yolk batter to loosen it. Then gently fold in the rest using a spatula, keeping as much air as possible.",
			"Preheat a non-stick pan over low heat and lightly butter it. If you have ring molds, grease them and place on the pan.",
			"Spoon the batter into 2–3 tall mounds (or into molds). Add a spoonful more on top once they start to set, stacking them higher.",
			"Cover with a lid and cook on very low heat for 4–5 minutes, until the bottoms are golden and the sides look set.",
			"Very gently flip each pancake using a spatula. Cover again and cook another 3–4 minutes until fully cooked through but still bouncy.",
			"Serve immediately with syrup, whipped cream, and berries. Enjoy the little wobbles before they disappear.",
		},
	},
	{
		ID:          "stew",
		Name:        "Forest Cream Stew",
		Tag:         "Comforting Cream Stew",
		Description: "A gentle, creamy stew perfect for rainy evenings.",
		Image:       "https://images.pexels.com/photos/6287529/pexels-photo-6287529.jpeg?auto=compress&cs=tinysrgb&w=800",
		Mood:        "Warm | Hearthside dinner | Storytime",
		Time:        "45 mins",
		Serves:      "3–4 travelers",
		IsDefault:   true,
		Ingredients: []string{
			"2 tbsp butter",
			"1 small onion, finely sliced",
			"1 carrot, cut into small moons",
			"2 small potatoes, cut into bite-sized pieces",
			"1 cup broccoli florets (or seasonal green vegetables)",
			"200 g chicken thigh, cut into bite-sized pieces (optional)",
			"2 tbsp all-purpose flour",
			"2 cups milk",
			"1 cup chicken or vegetable stock",
			"1 bay leaf",
			"Salt and white pepper to taste",
			"A splash of cream (optional, for extra coziness)",
		},
		Steps: []string{
			"In a heavy pot, melt butter over medium-low heat. Add onion and cook slowly until soft and sweet, not browned.",
			"Add carrot, potatoes, and chicken (if using). Stir and cook for 3–4 minutes until the chicken turns opaque.",
			"Sprinkle flour evenly over everything and stir for 1–2 minutes to cook off the raw taste. The mixture will look thick.",
			"Gradually pour in the milk and stock while stirring, making sure there are no lumps.",
			"Add the bay leaf. Bring to a gentle simmer, then lower the heat. Let it softly bubble for about 15–20 minutes, stirring now and then.",
			"Add broccoli and cook for another 5 minutes until all the vegetables are tender and the stew is creamy.",
			"Season carefully with salt and white pepper. Add a splash of cream if you want it extra rich.",
			"Turn off the heat, cover, and let the stew rest for 3–5 minutes so the flavors can settle like mist in a quiet forest.",
			"Serve with warm bread and a quiet moment.",
		},
	},
	{
		ID:          "bread",
		Name:        "Bakery Window Bread",
		Tag:         "Freshly Baked Milk Bread",
		Description: "Soft, slightly sweet bread perfect for butter and jam.",
		Image:       "https://images.pexels.com/photos/4109951/pexels-photo-4109951.jpeg?auto=compress&cs=tinysrgb&w=800",
		Mood:        "Gentle | Morning sunshine | Shared loaves",
		Time:        "2 hrs (including rising)",
		Serves:      "1 loaf",
		IsDefault:   true,
		Ingredients: []string{
			"2 1/2 cups bread flour (or strong flour)",
			"2 tbsp sugar",
			"1 tsp salt",
			"2 tsp instant yeast",
			"3/4 cup warm milk",
			"2 tbsp soft butter",
			"1 egg (room temperature)",
			"Extra butter for the pan and top",
		},
		Steps: []string{
			"In a large bowl, mix flour, sugar, salt, and instant yeast.",
			"Add warm milk, egg, and soft butter. Stir until a shaggy dough forms.",
			"Transfer to a lightly floured surface and knead for 8–10 minutes until the dough is smooth and stretchy.",
			"Shape into a ball and place in a lightly oiled bowl. Cover and let rise in a warm, draft-free spot for about 60 minutes, or until doubled.",
			"Gently press out the air. Divide into 3 equal pieces, roll each into a small log, and place side by side in a buttered loaf pan.",
			"Cover and let rise again for 30–40 minutes, until puffy and reaching just above the rim.",
			"Meanwhile, preheat the oven to 180°C / 350°F.",
			"Brush the top with a little milk or beaten egg for a shiny crust.",
			"Bake for 22–25 minutes until golden and fragrant. If it browns too quickly, tent loosely with foil.",
			"While still warm, brush with a bit of butter. Let cool slightly, then slice or tear apart while the steam still carries the smell of a tiny bakery.",
		},
	},
}

// BuiltinRecipes returns fresh copies of the shipped recipes, in catalog order.
func BuiltinRecipes() []Recipe {
	out := make([]Recipe, len(builtinRecipes))
	for i, r := range builtinRecipes {
		out[i] = r.Clone()
	}
	return out
}

// IsBuiltinID reports whether id belongs to a shipped recipe.
func IsBuiltinID(id string) bool {
	for _, r := range builtinRecipes {
		if r.ID == id {
			return true
		}
	}
	return false
}
