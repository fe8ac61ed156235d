// Package menu models the dishes a restaurant offers.
//
// A menu Item belongs to one restaurant, has a positive price in minor
// units and a free-text category used to group the menu. Orders copy the
// name and price of an item when they are placed, so editing or deleting an
// item never alters order history.
package menu
