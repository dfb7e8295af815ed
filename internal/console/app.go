package console

import (
	"errors"
	"fmt"
	"io"

	"librarycatalog/internal/catalog"
	"librarycatalog/internal/input"
	"librarycatalog/internal/item"
	"librarycatalog/internal/loan"

	"github.com/golang-sql/civil"
)

const (
	optAddBook = iota + 1
	optAddJournal
	optAddMagazine
	optSearch
	optRemove
	optBorrow
	optExit
	optListBooks
)

const menu = `
Library Catalog System:
1. Add a Book
2. Add a Journal
3. Add a Magazine
4. Search Item by ID
5. Remove an Item
6. Borrow an Item
7. Exit
8. List All Books
Choose an option: `

// App is the interactive menu loop over one catalog.
type App struct {
	catalog *catalog.Service
	loans   *loan.Service
	in      *Reader
	out     io.Writer
}

func NewApp(cat *catalog.Service, loans *loan.Service, in io.Reader, out io.Writer) *App {
	return &App{catalog: cat, loans: loans, in: NewReader(in), out: out}
}

// Run shows the menu and dispatches choices until the operator exits or the
// input runs out. Only a read failure other than end of input is returned.
func (a *App) Run() error {
	for {
		a.print(menu)
		choice, err := a.readInt()
		if err != nil {
			return endOfInput(err)
		}

		if choice == optExit {
			a.println("Exiting...")
			return nil
		}
		if err := a.dispatch(choice); err != nil {
			return endOfInput(err)
		}
	}
}

func (a *App) dispatch(choice int) error {
	switch choice {
	case optAddBook:
		return a.addBook()
	case optAddJournal:
		return a.addJournal()
	case optAddMagazine:
		return a.addMagazine()
	case optSearch:
		return a.search()
	case optRemove:
		return a.remove()
	case optBorrow:
		return a.borrow()
	case optListBooks:
		a.listBooks()
		return nil
	default:
		a.println("Invalid option. Please try again.")
		return nil
	}
}

type header struct {
	id        int
	title     string
	publisher string
}

func (a *App) readHeader(kind item.Kind) (header, error) {
	var h header
	var err error

	a.print("Enter " + kind.String() + " ID: ")
	if h.id, err = a.readInt(); err != nil {
		return h, err
	}
	a.print("Enter " + kind.String() + " Title: ")
	if h.title, err = a.in.Next(); err != nil {
		return h, err
	}
	a.print("Enter Publisher: ")
	if h.publisher, err = a.in.Next(); err != nil {
		return h, err
	}
	return h, nil
}

func (a *App) addBook() error {
	h, err := a.readHeader(item.KindBook)
	if err != nil {
		return err
	}
	a.print("Enter Author: ")
	author, err := a.in.Next()
	if err != nil {
		return err
	}
	published, err := a.readDate()
	if err != nil {
		return err
	}

	b := item.NewBook(h.id, h.title, h.publisher, published, author)
	a.catalog.Add(b)
	a.println("Book added: " + b.String())
	return nil
}

func (a *App) addJournal() error {
	h, err := a.readHeader(item.KindJournal)
	if err != nil {
		return err
	}
	a.print("Enter Volume: ")
	volume, err := a.in.Next()
	if err != nil {
		return err
	}
	published, err := a.readDate()
	if err != nil {
		return err
	}

	j := item.NewJournal(h.id, h.title, h.publisher, published, volume)
	a.catalog.Add(j)
	a.println("Journal added: " + j.String())
	return nil
}

func (a *App) addMagazine() error {
	h, err := a.readHeader(item.KindMagazine)
	if err != nil {
		return err
	}
	a.print("Enter Issue Number: ")
	issue, err := a.readInt()
	if err != nil {
		return err
	}
	published, err := a.readDate()
	if err != nil {
		return err
	}

	m := item.NewMagazine(h.id, h.title, h.publisher, published, issue)
	a.catalog.Add(m)
	a.println("Magazine added: " + m.String())
	return nil
}

func (a *App) search() error {
	a.print("Enter Item ID to search: ")
	id, err := a.readInt()
	if err != nil {
		return err
	}

	it, err := a.catalog.FindByID(id)
	if err != nil {
		return a.notFound(err)
	}
	a.println("Item found: " + it.String())
	return nil
}

func (a *App) remove() error {
	a.print("Enter Item ID to remove: ")
	id, err := a.readInt()
	if err != nil {
		return err
	}

	it, err := a.catalog.Remove(id)
	if err != nil {
		return a.notFound(err)
	}
	a.println("Item removed: " + it.String())
	return nil
}

func (a *App) borrow() error {
	a.print("Enter Item ID to borrow: ")
	id, err := a.readInt()
	if err != nil {
		return err
	}

	res, err := a.loans.Borrow(id)
	if err != nil {
		return a.notFound(err)
	}

	tx := res.Transaction
	a.println("Borrowing: " + tx.Item.String())
	if errors.Is(res.Overdue, loan.ErrOverdue) {
		a.println("The item is overdue!")
	}
	a.println("Item returned: " + tx.Item.Title)
	return nil
}

func (a *App) listBooks() {
	a.println("Listing all books in the catalog:")
	for b := range a.catalog.ListByKind(item.KindBook) {
		a.println(b.String())
	}
}

// notFound reports a missing item. Any other error is passed up.
func (a *App) notFound(err error) error {
	if errors.Is(err, catalog.ErrNotFound) {
		a.println("Item not found.")
		return nil
	}
	return err
}

// readInt reads tokens until one parses as an integer. Rejected tokens are
// discarded.
func (a *App) readInt() (int, error) {
	for {
		tok, err := a.in.Next()
		if err != nil {
			return 0, err
		}
		n, err := input.ParseInt(tok)
		if err == nil {
			return n, nil
		}
		a.print("Invalid input. Please enter a valid number: ")
	}
}

// readDate reads year, month and day tokens. A malformed token or an
// impossible date discards what was read so far and starts a new triple.
func (a *App) readDate() (civil.Date, error) {
	a.print("Enter Publish Year, Month, Day: ")
	for {
		d, err := a.readDateOnce()
		if err == nil {
			return d, nil
		}
		if !errors.Is(err, input.ErrNotANumber) && !errors.Is(err, input.ErrInvalidDate) {
			return civil.Date{}, err
		}
		a.println("Invalid date format. Please enter Year, Month, Day: ")
	}
}

func (a *App) readDateOnce() (civil.Date, error) {
	var parts [3]int
	for i := range parts {
		tok, err := a.in.Next()
		if err != nil {
			return civil.Date{}, err
		}
		if parts[i], err = input.ParseInt(tok); err != nil {
			return civil.Date{}, err
		}
	}
	return input.NewDate(parts[0], parts[1], parts[2])
}

func (a *App) print(s string) {
	_, _ = fmt.Fprint(a.out, s)
}

func (a *App) println(s string) {
	_, _ = fmt.Fprintln(a.out, s)
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
