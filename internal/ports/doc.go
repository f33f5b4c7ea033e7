// Package ports holds the interfaces that connect the layers of the item
// tracker. HTTP handlers and the CLI depend on ItemService; the application
// layer depends on ItemRepository, which the Notion adapter implements.
package ports
