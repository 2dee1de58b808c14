package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"go-retail-pos/internal/store"
)

// RunAgent answers one back-office question with tool access to the
// catalog and the sales ledger. The model can look things up and adjust a
// sale price, nothing else - restocking and checkout stay human-driven.
func RunAgent(s *store.Store, userMessage string, apiKey string) (string, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", err
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.0-flash-001")

	today := time.Now().Format("2006-01-02")
	systemPrompt := fmt.Sprintf(`SYSTEM: Today is %s. You are the back-office assistant of a small retail store.

	RULES:
	1. If a user asks about a product by NAME, do not ask for the ID. Call 'check_inventory', find the item in the JSON, and answer from it.
	2. Prices: unit_cost is what the store pays per base unit, sale_price is what the customer pays. Use 'update_sale_price' only when explicitly asked to change a price.
	3. For revenue questions use 'get_sales_report'. For restocking questions use 'low_stock_products'.
	4. All amounts are USD.

	USER: %s`, today, userMessage)

	model.Tools = []*genai.Tool{
		{
			FunctionDeclarations: []*genai.FunctionDeclaration{
				{
					Name:        "check_inventory",
					Description: "Get the full product catalog. Use this to find ANY product detail: ID, Code, Name, UnitCost, SalePrice, or Stock.",
				},
				{
					Name:        "update_sale_price",
					Description: "Update the sale price of a specific product using its ID",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"product_id": {Type: genai.TypeInteger, Description: "ID of the product"},
							"new_price":  {Type: genai.TypeNumber, Description: "New sale price in USD"},
						},
						Required: []string{"product_id", "new_price"},
					},
				},
				{
					Name:        "get_sales_report",
					Description: "Get total sales revenue and transaction count for a date range.",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"start_date": {Type: genai.TypeString, Description: "Start date (YYYY-MM-DD)"},
							"end_date":   {Type: genai.TypeString, Description: "End date (YYYY-MM-DD), inclusive"},
						},
						Required: []string{"start_date", "end_date"},
					},
				},
				{
					Name:        "low_stock_products",
					Description: "List products at or below their reorder threshold.",
				},
			},
		},
	}

	session := model.StartChat()

	resp, err := session.SendMessage(ctx, genai.Text(systemPrompt))
	if err != nil {
		return "", err
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if funcCall, ok := part.(genai.FunctionCall); ok {
			switch funcCall.Name {
			case "check_inventory":
				return executeCheckInventory(ctx, s, session)
			case "update_sale_price":
				return executeUpdatePrice(ctx, s, session, funcCall), nil
			case "get_sales_report":
				return executeSalesReport(ctx, s, session, funcCall), nil
			case "low_stock_products":
				return executeLowStock(ctx, s, session)
			}
		}
	}

	return printResponse(resp), nil
}

type inventoryItem struct {
	ID        uint    `json:"id"`
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Stock     int     `json:"stock"`
	UnitCost  float64 `json:"unit_cost"`
	SalePrice float64 `json:"sale_price"`
}

func executeCheckInventory(ctx context.Context, s *store.Store, session *genai.ChatSession) (string, error) {
	products, err := s.ListProducts()
	if err != nil {
		return "", err
	}

	items := make([]inventoryItem, 0, len(products))
	for _, p := range products {
		items = append(items, inventoryItem{
			ID: p.ID, Code: p.Code, Name: p.Name,
			Stock: p.Stock, UnitCost: p.UnitCost, SalePrice: p.SalePrice,
		})
	}
	jsonBytes, _ := json.Marshal(items)

	finalResp, err := session.SendMessage(ctx, genai.FunctionResponse{
		Name:     "check_inventory",
		Response: map[string]interface{}{"inventory": string(jsonBytes)},
	})
	if err != nil {
		return "", err
	}

	// The model may chain a price update after reading the inventory.
	for _, part := range finalResp.Candidates[0].Content.Parts {
		if funcCall, ok := part.(genai.FunctionCall); ok && funcCall.Name == "update_sale_price" {
			return executeUpdatePrice(ctx, s, session, funcCall), nil
		}
	}
	return printResponse(finalResp), nil
}

func executeUpdatePrice(ctx context.Context, s *store.Store, session *genai.ChatSession, funcCall genai.FunctionCall) string {
	args := funcCall.Args
	productID := uint(args["product_id"].(float64))
	newPrice := args["new_price"].(float64)

	msg := "Success"
	product, err := s.GetProduct(productID)
	if err != nil {
		msg = "Product ID not found"
	} else {
		product.SalePrice = newPrice
		if err := s.UpdateProduct(product); err != nil {
			msg = "Update failed"
		}
	}

	finalResp, _ := session.SendMessage(ctx, genai.FunctionResponse{
		Name:     "update_sale_price",
		Response: map[string]interface{}{"status": msg, "new_price": newPrice},
	})
	return printResponse(finalResp)
}

func executeSalesReport(ctx context.Context, s *store.Store, session *genai.ChatSession, funcCall genai.FunctionCall) string {
	args := funcCall.Args
	startStr := args["start_date"].(string)
	endStr := args["end_date"].(string)

	start, err1 := time.Parse("2006-01-02", startStr)
	end, err2 := time.Parse("2006-01-02", endStr)
	if err1 != nil || err2 != nil {
		return "Error: Dates must be in YYYY-MM-DD format."
	}
	end = end.Add(24 * time.Hour) // inclusive end date

	report, err := s.SalesSummaryBetween(start, end)
	if err != nil {
		return "Error calculating sales."
	}

	finalResp, _ := session.SendMessage(ctx, genai.FunctionResponse{
		Name: "get_sales_report",
		Response: map[string]interface{}{
			"revenue":     report.TotalRevenue,
			"sales_count": report.TotalCount,
		},
	})
	return printResponse(finalResp)
}

func executeLowStock(ctx context.Context, s *store.Store, session *genai.ChatSession) (string, error) {
	products, err := s.LowStockProducts()
	if err != nil {
		return "", err
	}

	type lowItem struct {
		Name    string `json:"name"`
		Stock   int    `json:"stock"`
		Minimum int    `json:"minimum"`
	}
	items := make([]lowItem, 0, len(products))
	for _, p := range products {
		items = append(items, lowItem{Name: p.Name, Stock: p.Stock, Minimum: p.StockMinimum})
	}
	jsonBytes, _ := json.Marshal(items)

	finalResp, err := session.SendMessage(ctx, genai.FunctionResponse{
		Name:     "low_stock_products",
		Response: map[string]interface{}{"products": string(jsonBytes)},
	})
	if err != nil {
		return "", err
	}
	return printResponse(finalResp), nil
}

func printResponse(resp *genai.GenerateContentResponse) string {
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			return string(txt)
		}
	}
	return "I completed the action."
}
