// Package catalog contains the sellable items of the pizzeria: ingredients,
// pizzas composed of ingredients, and simple side items (drinks and desserts).
//
// A pizza never stores its price or its dietary flags. The price is derived
// from the current ingredient costs every time it is asked for:
//
//	final = round(Σ ingredient.cost × 1.4 × 1.09, 2)
//
// (40% margin, 9% tax) and the vegetarian/vegan flags are recomputed by the
// pizza itself whenever its ingredient set changes. Adding a non-vegetarian
// ingredient to a pizza that is currently vegetarian is rejected.
package catalog
