package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"ecofinds/client"
	"ecofinds/config"
	"ecofinds/model"
	"ecofinds/pkg/observability"
	"ecofinds/shop"
)

// ecocli is a terminal harness for the marketplace core: browse, cart,
// checkout, chat, profile. It stands in for the GUI the core is rendered
// by in production.
func main() {
	cfg := config.Load()

	session := client.NewSession()
	api := client.New(cfg.APIBaseURL, session)

	cart := shop.NewCart()
	catalog := shop.NewCatalog(api)
	ledger := shop.NewTransactionLedger(api)
	checkout := shop.NewCheckoutCoordinator(api, cart, ledger, observability.Logger())
	thread := shop.NewMessageThread(api)

	fmt.Println("EcoFINDS marketplace — type 'help' for commands")

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "help":
			printHelp()
		case "login":
			if len(args) != 2 {
				fmt.Println("usage: login <email> <password>")
				continue
			}
			user, err := api.Login(ctx, args[0], args[1])
			if err != nil {
				printError(err)
				continue
			}
			fmt.Printf("Welcome, %s! (%d eco points)\n", user.Username, user.EcoPoints)
		case "register":
			if len(args) < 3 {
				fmt.Println("usage: register <email> <username> <password> [full name]")
				continue
			}
			fullName := strings.Join(args[3:], " ")
			user, err := api.Register(ctx, args[0], args[1], args[2], fullName)
			if err != nil {
				printError(err)
				continue
			}
			fmt.Printf("Account created. Welcome, %s!\n", user.Username)
		case "logout":
			session.Invalidate()
			fmt.Println("Logged out.")
		case "items":
			category, query := shop.CategoryAll, ""
			if len(args) > 0 {
				category = args[0]
			}
			if len(args) > 1 {
				query = strings.Join(args[1:], " ")
			}
			items, err := catalog.Search(ctx, category, query)
			if err != nil {
				printError(err)
				continue
			}
			if len(items) == 0 {
				fmt.Println("No items found")
				continue
			}
			for _, item := range items {
				fmt.Printf("%s  %-40s %8s  +%d pts  [%s, %s]  by %s\n",
					item.ID, item.Title, item.Price.StringFixed(2),
					item.EcoPointsReward, item.Category, item.Condition, sellerName(item))
			}
		case "view":
			if len(args) != 1 {
				fmt.Println("usage: view <item-id>")
				continue
			}
			item, err := api.Item(ctx, args[0])
			if err != nil {
				printError(err)
				continue
			}
			printItem(item)
		case "add":
			if len(args) != 1 {
				fmt.Println("usage: add <item-id>")
				continue
			}
			item, err := api.Item(ctx, args[0])
			if err != nil {
				printError(err)
				continue
			}
			if !item.IsAvailable {
				fmt.Println("This item has been sold")
				continue
			}
			if cart.Add(*item) {
				fmt.Printf("Added %q to cart (%d items)\n", item.Title, cart.Len())
			} else {
				fmt.Println("Already in cart")
			}
		case "remove":
			if len(args) != 1 {
				fmt.Println("usage: remove <item-id>")
				continue
			}
			cart.Remove(args[0])
			fmt.Printf("Cart has %d items\n", cart.Len())
		case "cart":
			items := cart.Items()
			if len(items) == 0 {
				fmt.Println("Your cart is empty.")
				continue
			}
			for _, item := range items {
				fmt.Printf("%s  %-40s %8s\n", item.ID, item.Title, item.Price.StringFixed(2))
			}
			fmt.Printf("Total: %s\n", cart.Total().StringFixed(2))
		case "checkout":
			result, err := checkout.Checkout(ctx)
			if err != nil {
				printError(err)
			}
			for _, f := range result.Failures {
				fmt.Printf("Could not purchase %q: item no longer available (kept in cart)\n", f.Item.Title)
			}
			if result.Order != nil {
				fmt.Println("Order Confirmed!")
				for _, item := range result.Order.Items {
					fmt.Printf("  %s — %s\n", item.Title, item.Price.StringFixed(2))
				}
				fmt.Printf("Total Paid: %s\n", result.Order.Total.StringFixed(2))
				fmt.Printf("You earned %d eco points!\n", result.EcoPointsEarned)
			} else if len(result.Failures) == 0 && err == nil {
				fmt.Println("Your cart is empty.")
			}
		case "chat":
			if len(args) != 1 {
				fmt.Println("usage: chat <item-id>")
				continue
			}
			msgs, err := thread.Load(ctx, args[0])
			if err != nil {
				printError(err)
				continue
			}
			printThread(msgs, session.CurrentUser())
		case "msg":
			if len(args) < 2 {
				fmt.Println("usage: msg <item-id> <text>")
				continue
			}
			item, err := api.Item(ctx, args[0])
			if err != nil {
				printError(err)
				continue
			}
			receiver := item.SellerID
			if me := session.CurrentUser(); me != nil && me.ID == item.SellerID {
				fmt.Println("You are the seller of this item; reply from the chat view instead.")
				continue
			}
			if _, err := thread.Send(ctx, item.ID, receiver, strings.Join(args[1:], " ")); err != nil {
				printError(err)
				continue
			}
			// Re-load so the view reflects the server's thread state.
			msgs, err := thread.Load(ctx, item.ID)
			if err != nil {
				printError(err)
				continue
			}
			printThread(msgs, session.CurrentUser())
		case "sell":
			item, err := promptItem(scanner)
			if err != nil {
				printError(err)
				continue
			}
			created, err := api.CreateItem(ctx, *item)
			if err != nil {
				printError(err)
				continue
			}
			fmt.Printf("Item listed: %s (%s)\n", created.Title, created.ID)
		case "profile":
			user, err := api.Me(ctx)
			if err != nil {
				printError(err)
				continue
			}
			fmt.Printf("%s (@%s) — %d eco points\n", user.FullName, user.Username, user.EcoPoints)
			txs, err := ledger.Refresh(ctx)
			if err != nil {
				printError(err)
				continue
			}
			if len(txs) == 0 {
				fmt.Println("No transactions yet")
				continue
			}
			for _, t := range txs {
				direction := "Sold to"
				if t.Type == model.TransactionPurchase {
					direction = "Purchased from"
				}
				other := t.OtherUser
				if other == "" {
					other = "Unknown"
				}
				fmt.Printf("%s  %-40s %8s  %s %s", t.CreatedAt.Format("2006-01-02"), t.ItemTitle, t.Amount.StringFixed(2), direction, other)
				if t.Type == model.TransactionPurchase {
					fmt.Printf("  +%d pts", t.EcoPointsEarned)
				}
				fmt.Println()
			}
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q — type 'help'\n", cmd)
		}
	}
}

func printHelp() {
	fmt.Println(`commands:
  login <email> <password>        sign in
  register <email> <user> <pass>  create an account
  logout                          drop the session
  items [category] [search]       browse available items (category "All" = everything)
  view <item-id>                  item details
  add <item-id>                   add item to cart
  remove <item-id>                remove item from cart
  cart                            show cart and total
  checkout                        purchase everything in the cart
  chat <item-id>                  show the conversation for an item
  msg <item-id> <text>            message the seller
  sell                            list a new item
  profile                         eco points and transaction history
  quit`)
}

func printError(err error) {
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		fmt.Println("Please log in first (your session may have expired).")
	case errors.Is(err, client.ErrItemUnavailable):
		fmt.Println("This item has been sold.")
	case errors.Is(err, client.ErrEmptyContent):
		fmt.Println("Cannot send an empty message.")
	case errors.Is(err, shop.ErrSuperseded):
		// a newer search replaced this one; nothing to show
	default:
		fmt.Println("Error:", err)
	}
}

func sellerName(item model.Item) string {
	if item.SellerName == "" {
		return "Unknown"
	}
	return item.SellerName
}

func printItem(item *model.Item) {
	status := "Available"
	if !item.IsAvailable {
		status = "Sold"
	}
	fmt.Printf("%s\n%s\nPrice: %s  Reward: +%d pts  Category: %s  Condition: %s  Status: %s\nSeller: %s\n",
		item.Title, item.Description, item.Price.StringFixed(2),
		item.EcoPointsReward, item.Category, item.Condition, status, sellerName(*item))
	for _, img := range item.Images {
		fmt.Println("  image:", img)
	}
}

func printThread(msgs []model.Message, me *model.User) {
	if len(msgs) == 0 {
		fmt.Println("No messages yet.")
		return
	}
	for _, m := range msgs {
		who := m.SenderName
		if who == "" {
			who = "Unknown"
		}
		if me != nil && m.SenderID == me.ID {
			who = "you"
		}
		fmt.Printf("[%s] %s: %s\n", m.Timestamp.Format("15:04:05"), who, m.Content)
	}
}

func promptItem(scanner *bufio.Scanner) (*client.ItemDraft, error) {
	read := func(label string) (string, error) {
		fmt.Printf("%s: ", label)
		if !scanner.Scan() {
			return "", errors.New("input closed")
		}
		return strings.TrimSpace(scanner.Text()), nil
	}

	title, err := read("Title")
	if err != nil {
		return nil, err
	}
	description, err := read("Description")
	if err != nil {
		return nil, err
	}
	priceStr, err := read("Price")
	if err != nil {
		return nil, err
	}
	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q", priceStr)
	}
	category, err := read(fmt.Sprintf("Category %v", model.Categories))
	if err != nil {
		return nil, err
	}
	condition, err := read(fmt.Sprintf("Condition %v", model.Conditions))
	if err != nil {
		return nil, err
	}
	imageURL, err := read("Image URL (optional)")
	if err != nil {
		return nil, err
	}

	draft := &client.ItemDraft{
		Title:       title,
		Description: description,
		Price:       price,
		Category:    category,
		Condition:   condition,
	}
	if imageURL != "" {
		draft.Images = []string{imageURL}
	}
	return draft, nil
}
