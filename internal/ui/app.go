package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Mariem-Daha/chefcode1.0/internal/cache"
	"github.com/Mariem-Daha/chefcode1.0/internal/client"
	"github.com/Mariem-Daha/chefcode1.0/internal/models"
	"github.com/Mariem-Daha/chefcode1.0/internal/state"
)

// chatEntry is one line of the assistant transcript.
type chatEntry struct {
	role string // "user" or "assistant"
	text string
}

// recipeDraft accumulates the recipe add form across lines.
type recipeDraft struct {
	name  string
	items []models.RecipeItem
	yield *models.Yield
}

// Model defines the application state. It owns the State object and is
// the only writer to it; every mutation happens here, then a sync command
// is fired at the backend.
type Model struct {
	mainMenu   list.Model
	invTable   table.Model
	taskTable  table.Model
	recipeList list.Model
	searchList list.Model
	textInput  textinput.Model
	spinner    spinner.Model

	client *client.Client
	cache  *cache.Cache
	state  *state.State

	currentView string
	loading     bool
	offline     bool
	status      string

	draft          recipeDraft
	ocrResult      *client.OCRResult
	searchResults  []client.WebRecipe
	currentRecipe  *client.WebRecipe
	mappings       []client.MappedIngredient
	detailRecipe   string
	chatLog        []chatEntry
	conversation   map[string]interface{}
	pendingConfirm map[string]interface{}
}

// New initializes the model.
func New(api *client.Client, store *cache.Cache) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	items := []list.Item{
		item{title: "Inventory", desc: "View stock, add items, import invoices"},
		item{title: "Recipes", desc: "Define recipes and yields"},
		item{title: "Production", desc: "Schedule tasks and track batches"},
		item{title: "Recipe Search", desc: "Find and import recipes from the web"},
		item{title: "Assistant", desc: "Type commands in plain language"},
		item{title: "Exit", desc: "Exit the application"},
	}
	mainMenu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	mainMenu.Title = "ChefCode"

	invTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 4},
			{Title: "Name", Width: 20},
			{Title: "Qty", Width: 8},
			{Title: "Unit", Width: 5},
			{Title: "Category", Width: 12},
			{Title: "Price", Width: 8},
			{Title: "Batch", Width: 8},
			{Title: "Expiry", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	taskTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 4},
			{Title: "Recipe", Width: 20},
			{Title: "Batches", Width: 8},
			{Title: "Assigned", Width: 12},
			{Title: "Status", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	recipeList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	recipeList.Title = "Recipes"

	searchList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	searchList.Title = "Search Results"

	ti := textinput.New()
	ti.CharLimit = 200
	ti.Width = 60

	return Model{
		mainMenu:     mainMenu,
		invTable:     invTable,
		taskTable:    taskTable,
		recipeList:   recipeList,
		searchList:   searchList,
		textInput:    ti,
		spinner:      s,
		client:       api,
		cache:        store,
		state:        state.New(),
		currentView:  "main",
		loading:      true,
		conversation: map[string]interface{}{},
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchData(m.client, m.cache))
}

func (m *Model) refreshAll() {
	m.invTable.SetRows(inventoryRows(m.state))
	m.taskTable.SetRows(taskRows(m.state))
	m.recipeList.SetItems(convertRecipesToItems(m.state))
}

// prompt switches to a text-entry view.
func (m *Model) prompt(view, placeholder string) {
	m.currentView = view
	m.status = ""
	m.textInput.SetValue("")
	m.textInput.Placeholder = placeholder
	m.textInput.Focus()
}

func (m *Model) closeInput(parent string) {
	m.textInput.Blur()
	m.textInput.SetValue("")
	m.currentView = parent
}

// inputViews maps each text-entry view to the view esc returns to.
var inputViews = map[string]string{
	"inventory_add": "inventory",
	"ocr_input":     "inventory",
	"recipe_add":    "recipes",
	"task_add":      "production",
	"search_input":  "main",
	"assistant":     "main",
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.mainMenu.SetSize(msg.Width-h, msg.Height-v)
		m.recipeList.SetSize(msg.Width-h, msg.Height-v)
		m.searchList.SetSize(msg.Width-h, msg.Height-v)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case dataMsg:
		m.loading = false
		m.state.Restore(msg.snap)
		m.offline = msg.fromCache
		if msg.fromCache {
			m.status = warningStyle.Render("Backend unreachable, showing cached data")
		} else {
			m.status = ""
		}
		m.refreshAll()
		return m, nil

	case errorMsg:
		m.loading = false
		m.status = errorStyle.Render(msg.err)
		return m, nil

	case confirmMsg:
		m.status = successStyle.Render(msg.message)
		return m, nil

	case syncedMsg:
		m.offline = false
		return m, nil

	case ocrResultMsg:
		m.ocrResult = msg.result
		m.currentView = "ocr_review"
		m.status = ""
		return m, nil

	case searchResultsMsg:
		m.searchResults = msg.recipes
		m.searchList.SetItems(convertSearchResults(msg.recipes))
		m.currentView = "search_results"
		if len(msg.recipes) == 0 {
			m.status = infoStyle.Render("No recipes found")
		} else {
			m.status = ""
		}
		return m, nil

	case mappingsMsg:
		recipe := msg.recipe
		m.currentRecipe = &recipe
		m.mappings = msg.mappings
		m.currentView = "search_mapping"
		m.status = ""
		return m, nil

	case webRecipeSavedMsg:
		// imported recipes land in the backend catalogue; refetch picks them up
		m.status = successStyle.Render(fmt.Sprintf("Recipe %q imported", msg.name))
		m.currentView = "recipes"
		return m, fetchData(m.client, m.cache)

	case assistantMsg:
		result := msg.result
		m.chatLog = append(m.chatLog, chatEntry{role: "assistant", text: result.Message})
		if result.RequiresConfirmation {
			m.pendingConfirm = result.ConfirmationData
		} else {
			m.conversation["last_intent"] = result.Intent
			if result.ActionResult != nil {
				m.conversation["last_result"] = result.ActionResult
			}
		}
		return m, nil

	case chatMsg:
		m.chatLog = append(m.chatLog, chatEntry{role: "assistant", text: msg.reply.Response})
		return m, nil

	case assistantConfirmedMsg:
		m.chatLog = append(m.chatLog, chatEntry{role: "assistant", text: msg.result.Message})
		if msg.result.Success {
			// the confirmed action changed backend state
			return m, fetchData(m.client, m.cache)
		}
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentView {
	case "main":
		m.mainMenu, cmd = m.mainMenu.Update(msg)
	case "inventory":
		m.invTable, cmd = m.invTable.Update(msg)
	case "production":
		m.taskTable, cmd = m.taskTable.Update(msg)
	case "recipes":
		m.recipeList, cmd = m.recipeList.Update(msg)
	case "search_results":
		m.searchList, cmd = m.searchList.Update(msg)
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if parent, ok := inputViews[m.currentView]; ok {
		// confirmation round-trip swallows y/n before the input sees them
		if m.currentView == "assistant" && m.pendingConfirm != nil && (key == "y" || key == "n") {
			data := m.pendingConfirm
			m.pendingConfirm = nil
			return m, confirmCommand(m.client, key == "y", data)
		}
		switch key {
		case "enter":
			return m.submitInput()
		case "esc":
			m.status = ""
			m.draft = recipeDraft{}
			m.pendingConfirm = nil
			m.closeInput(parent)
			return m, nil
		}
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	switch key {
	case "q":
		if m.currentView == "main" {
			return m, tea.Quit
		}
	case "esc":
		m.status = ""
		switch m.currentView {
		case "search_detail":
			m.currentView = "search_results"
		case "search_mapping":
			m.currentView = "search_detail"
		case "ocr_review":
			m.ocrResult = nil
			m.currentView = "inventory"
		case "recipe_detail":
			m.currentView = "recipes"
		case "main":
		default:
			m.currentView = "main"
		}
		return m, nil
	case "enter":
		return m.handleEnter()
	}

	switch m.currentView {
	case "inventory":
		switch key {
		case "a":
			m.prompt("inventory_add", "name, quantity, unit, price[, category[, batch[, expiry]]]")
			return m, nil
		case "o":
			m.prompt("ocr_input", "path to invoice image")
			return m, nil
		case "d":
			return m.deleteSelectedInventory()
		case "r":
			m.status = ""
			return m, fetchData(m.client, m.cache)
		}
	case "recipes":
		switch key {
		case "n":
			m.draft = recipeDraft{}
			m.prompt("recipe_add", "recipe name")
			return m, nil
		case "d":
			return m.deleteSelectedRecipe()
		}
	case "production":
		switch key {
		case "n":
			m.prompt("task_add", "recipe, quantity[, assignee[, completed]]")
			return m, nil
		case "c":
			return m.completeSelectedTask()
		}
	case "search_detail":
		if key == "i" && m.currentRecipe != nil {
			m.status = infoStyle.Render("Mapping ingredients...")
			return m, mapIngredients(m.client, *m.currentRecipe)
		}
	case "search_mapping":
		if key == "s" && m.currentRecipe != nil {
			return m, saveWebRecipe(m.client, *m.currentRecipe, m.mappings)
		}
	}

	return m.updateFocused(msg)
}

func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	switch m.currentView {
	case "main":
		selected, ok := m.mainMenu.SelectedItem().(item)
		if !ok {
			return m, nil
		}
		switch selected.title {
		case "Exit":
			return m, tea.Quit
		case "Inventory":
			m.currentView = "inventory"
			m.refreshAll()
		case "Recipes":
			m.currentView = "recipes"
			m.refreshAll()
		case "Production":
			m.currentView = "production"
			m.refreshAll()
		case "Recipe Search":
			m.prompt("search_input", "what do you want to cook?")
		case "Assistant":
			m.prompt("assistant", "tell the assistant what to do, or '?' to just chat")
		}
		return m, nil

	case "recipes":
		if selected, ok := m.recipeList.SelectedItem().(recipeItem); ok {
			m.detailRecipe = selected.name
			m.currentView = "recipe_detail"
		}
		return m, nil

	case "production":
		return m.advanceSelectedTask()

	case "search_results":
		if selected, ok := m.searchList.SelectedItem().(searchItem); ok && selected.index < len(m.searchResults) {
			recipe := m.searchResults[selected.index]
			m.currentRecipe = &recipe
			m.currentView = "search_detail"
		}
		return m, nil

	case "ocr_review":
		return m.importOCRItems()
	}
	return m, nil
}

// submitInput handles 'enter' on the text-entry views.
func (m Model) submitInput() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textInput.Value())

	switch m.currentView {
	case "inventory_add":
		if input == "" {
			return m, nil
		}
		candidate, err := parseInventoryInput(input)
		if err != nil {
			m.status = errorStyle.Render(err.Error())
			return m, nil
		}
		if err := state.ValidateNewItem(candidate, time.Now()); err != nil {
			m.status = errorStyle.Render(err.Error())
			return m, nil
		}
		m.state.AddOrMergeInventory(candidate)
		m.refreshAll()
		m.status = successStyle.Render(fmt.Sprintf("%s added", candidate.Name))
		m.closeInput("inventory")
		return m, pushInventory(m.client, candidate)

	case "ocr_input":
		if input == "" {
			return m, nil
		}
		m.status = infoStyle.Render("Processing invoice...")
		m.closeInput("inventory")
		return m, uploadInvoice(m.client, input)

	case "recipe_add":
		return m.submitRecipeLine(input)

	case "task_add":
		if input == "" {
			return m, nil
		}
		recipe, qty, assignee, status, err := parseTaskInput(input)
		if err != nil {
			m.status = errorStyle.Render(err.Error())
			return m, nil
		}
		task, res, err := m.state.AddTask(recipe, qty, assignee, status)
		if err != nil {
			m.status = errorStyle.Render(err.Error())
			return m, nil
		}
		m.refreshAll()
		m.closeInput("production")
		cmds := []tea.Cmd{pushTask(m.client, task)}
		if res != nil {
			// consumption already ran locally; push the new quantities too
			cmds = append(cmds, syncData(m.client, m.cache, m.state.Snapshot()))
			m.status = consumeStatus(*res)
		} else {
			m.status = successStyle.Render(fmt.Sprintf("Task #%d scheduled", task.ID))
		}
		return m, tea.Batch(cmds...)

	case "search_input":
		if input == "" {
			return m, nil
		}
		m.status = infoStyle.Render("Searching...")
		m.closeInput("main")
		return m, searchRecipes(m.client, input)

	case "assistant":
		if input == "" {
			return m, nil
		}
		m.chatLog = append(m.chatLog, chatEntry{role: "user", text: input})
		m.textInput.SetValue("")
		if question, ok := strings.CutPrefix(input, "?"); ok {
			return m, askChat(m.client, strings.TrimSpace(question))
		}
		return m, sendCommand(m.client, input, m.conversation)
	}
	return m, nil
}

// submitRecipeLine drives the multi-line recipe form: first the name,
// then ingredient lines, an optional yield line, then "done".
func (m Model) submitRecipeLine(input string) (tea.Model, tea.Cmd) {
	if input == "" {
		return m, nil
	}

	if m.draft.name == "" {
		m.draft.name = input
		m.textInput.SetValue("")
		m.textInput.Placeholder = "ingredient: name, qty, unit ('yield qty, unit' or 'done')"
		return m, nil
	}

	if strings.EqualFold(input, "done") {
		recipe := models.Recipe{Items: m.draft.items, Yield: m.draft.yield}
		name := m.draft.name
		if err := m.state.SaveRecipe(name, recipe); err != nil {
			m.status = errorStyle.Render(err.Error())
			return m, nil
		}
		m.draft = recipeDraft{}
		m.refreshAll()
		m.status = successStyle.Render(fmt.Sprintf("Recipe %q saved", name))
		m.closeInput("recipes")
		return m, pushRecipe(m.client, name, recipe)
	}

	if rest, ok := strings.CutPrefix(strings.ToLower(input), "yield "); ok {
		y, err := parseYield(rest)
		if err != nil {
			m.status = errorStyle.Render(err.Error())
			return m, nil
		}
		m.draft.yield = y
		m.textInput.SetValue("")
		return m, nil
	}

	ing, err := parseRecipeLine(input)
	if err != nil {
		m.status = errorStyle.Render(err.Error())
		return m, nil
	}
	m.draft.items = append(m.draft.items, ing)
	m.status = ""
	m.textInput.SetValue("")
	return m, nil
}

func (m Model) selectedID(t table.Model) (int, bool) {
	row := t.SelectedRow()
	if row == nil {
		return 0, false
	}
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return 0, false
	}
	return id, true
}

func (m Model) deleteSelectedInventory() (tea.Model, tea.Cmd) {
	id, ok := m.selectedID(m.invTable)
	if !ok {
		return m, nil
	}
	if !m.state.DeleteInventory(id) {
		m.status = errorStyle.Render(fmt.Sprintf("No item with id %d", id))
		return m, nil
	}
	m.refreshAll()
	return m, deleteInventory(m.client, id)
}

func (m Model) deleteSelectedRecipe() (tea.Model, tea.Cmd) {
	selected, ok := m.recipeList.SelectedItem().(recipeItem)
	if !ok {
		return m, nil
	}
	if !m.state.DeleteRecipe(selected.name) {
		return m, nil
	}
	m.refreshAll()
	m.status = successStyle.Render(fmt.Sprintf("Recipe %q deleted", selected.name))
	return m, syncData(m.client, m.cache, m.state.Snapshot())
}

func (m Model) advanceSelectedTask() (tea.Model, tea.Cmd) {
	id, ok := m.selectedID(m.taskTable)
	if !ok {
		return m, nil
	}
	task, res, err := m.state.AdvanceTask(id)
	if err != nil {
		m.status = errorStyle.Render(err.Error())
		return m, nil
	}
	m.refreshAll()
	if res != nil {
		m.status = consumeStatus(*res)
	} else {
		m.status = infoStyle.Render(fmt.Sprintf("Task #%d is now %s", task.ID, task.Status))
	}
	return m, syncData(m.client, m.cache, m.state.Snapshot())
}

func (m Model) completeSelectedTask() (tea.Model, tea.Cmd) {
	id, ok := m.selectedID(m.taskTable)
	if !ok {
		return m, nil
	}
	_, res, err := m.state.CompleteTask(id)
	if err != nil {
		m.status = errorStyle.Render(err.Error())
		return m, nil
	}
	m.refreshAll()
	if res != nil {
		m.status = consumeStatus(*res)
	}
	return m, syncData(m.client, m.cache, m.state.Snapshot())
}

// importOCRItems merges every reviewed invoice line into the inventory,
// then pushes the whole state once.
func (m Model) importOCRItems() (tea.Model, tea.Cmd) {
	if m.ocrResult == nil {
		return m, nil
	}
	for _, it := range m.ocrResult.Items {
		m.state.AddOrMergeInventory(models.InventoryItem{
			Name:        it.Name,
			Unit:        it.Unit,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Category:    it.Category,
			BatchNumber: it.BatchNumber,
			ExpiryDate:  it.ExpiryDate,
		})
	}
	count := len(m.ocrResult.Items)
	m.ocrResult = nil
	m.refreshAll()
	m.currentView = "inventory"
	m.status = successStyle.Render(fmt.Sprintf("%d items imported", count))
	return m, syncData(m.client, m.cache, m.state.Snapshot())
}

// consumeStatus renders the outcome of an inventory draw-down, keeping
// skipped ingredients visible but non-fatal.
func consumeStatus(res state.ConsumeResult) string {
	if len(res.Skipped) > 0 {
		return warningStyle.Render("Not deducted: " + strings.Join(res.Skipped, "; "))
	}
	if res.Consumed {
		return successStyle.Render("Inventory updated")
	}
	return infoStyle.Render("Nothing to deduct")
}

// View renders the UI
func (m Model) View() string {
	if m.loading {
		return docStyle.Render(m.spinner.View() + " Loading...")
	}

	status := ""
	if m.status != "" {
		status = "\n" + m.status + "\n"
	}
	if m.offline {
		status += "\n" + warningStyle.Render("offline") + "\n"
	}

	switch m.currentView {
	case "main":
		return docStyle.Render(m.mainMenu.View() + status)
	case "inventory":
		help := "\n'a' add, 'o' import invoice, 'd' delete, 'r' refresh, 'esc' back\n"
		return docStyle.Render(titleStyle.Render("Inventory") + "\n\n" + m.invTable.View() + help + status)
	case "inventory_add":
		return docStyle.Render(titleStyle.Render("Add Inventory Item") + "\n\n" + m.textInput.View() + "\n\nPress 'enter' to add, 'esc' to cancel" + status)
	case "ocr_input":
		return docStyle.Render(titleStyle.Render("Import Invoice") + "\n\n" + m.textInput.View() + "\n\nPress 'enter' to upload, 'esc' to cancel" + status)
	case "ocr_review":
		return docStyle.Render(ocrReviewView(m.ocrResult) + status)
	case "recipes":
		help := "\n'n' new recipe, 'd' delete, 'enter' details, 'esc' back\n"
		return docStyle.Render(m.recipeList.View() + help + status)
	case "recipe_detail":
		recipe, ok := m.state.Recipes[m.detailRecipe]
		if !ok {
			return docStyle.Render(errorStyle.Render("Recipe not found") + status)
		}
		return docStyle.Render(recipeDetailView(m.detailRecipe, recipe) + status)
	case "recipe_add":
		return docStyle.Render(titleStyle.Render("New Recipe") + "\n\n" + recipeDraftView(m.draft) + "\n" + m.textInput.View() + "\n\nPress 'enter' to add a line, 'esc' to cancel" + status)
	case "production":
		help := "\n'n' new task, 'enter' advance status, 'c' complete now, 'esc' back\n"
		return docStyle.Render(titleStyle.Render("Production") + "\n\n" + m.taskTable.View() + help + status)
	case "task_add":
		return docStyle.Render(titleStyle.Render("Schedule Production Task") + "\n\n" + m.textInput.View() + "\n\nPress 'enter' to create, 'esc' to cancel" + status)
	case "search_input":
		return docStyle.Render(titleStyle.Render("Recipe Search") + "\n\n" + m.textInput.View() + "\n\nPress 'enter' to search, 'esc' to cancel" + status)
	case "search_results":
		help := "\n'enter' details, 'esc' back\n"
		return docStyle.Render(m.searchList.View() + help + status)
	case "search_detail":
		if m.currentRecipe == nil {
			return docStyle.Render(status)
		}
		return docStyle.Render(searchDetailView(*m.currentRecipe) + status)
	case "search_mapping":
		if m.currentRecipe == nil {
			return docStyle.Render(status)
		}
		return docStyle.Render(mappingView(*m.currentRecipe, m.mappings) + status)
	case "assistant":
		return docStyle.Render(assistantView(m.chatLog, m.textInput.View(), m.pendingConfirm != nil) + status)
	default:
		return docStyle.Render("Loading..." + status)
	}
}

// recipeDraftView shows the recipe form as it is built up.
func recipeDraftView(draft recipeDraft) string {
	if draft.name == "" {
		return "Enter the recipe name first.\n"
	}
	view := fmt.Sprintf("Name: %s\n\nIngredients:\n", draft.name)
	if len(draft.items) == 0 {
		view += "No ingredients added yet\n"
	}
	for i, ing := range draft.items {
		view += fmt.Sprintf("%d. %s - %s %s\n", i+1, ing.Name, formatQty(ing.Qty), ing.Unit)
	}
	if draft.yield != nil {
		view += fmt.Sprintf("Yield: %s %s\n", formatQty(draft.yield.Qty), draft.yield.Unit)
	}
	return view
}
