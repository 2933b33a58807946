package bookstand

// Book is a row of the inventory table: one title with its metadata and
// current stock. Title is the unique key; there is never more than one Book
// per title.
type Book struct {
	Title    string
	Author   string
	Genre    string
	Price    Money
	Quantity Quantity
}
