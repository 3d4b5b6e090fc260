package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tabela-fipe-cli/internal/model"
	"tabela-fipe-cli/internal/service"
)

// ErrInputClosed is returned when stdin ends before the lookup is complete
var ErrInputClosed = errors.New("entrada encerrada antes do fim da consulta")

const (
	msgEntradaInvalida = "Entrada inválida. Por favor, digite um número."
	msgOpcaoInvalida   = "Opção inválida, digite um número entre 1 e 3"
)

type inputLine struct {
	text string
	err  error
}

// Session drives the interactive lookup over a reader and a writer
type Session struct {
	in    *bufio.Scanner
	lines chan inputLine
	out   io.Writer
	svc   *service.ConsultaService
}

func NewSession(in io.Reader, out io.Writer, svc *service.ConsultaService) *Session {
	return &Session{
		in:  bufio.NewScanner(in),
		out: out,
		svc: svc,
	}
}

// Run walks through category, brand, model and year, printing what each
// stage finds. Only the category choice is retried; any other failure ends
// the session. Canceling ctx interrupts a pending prompt as well as a request.
func (s *Session) Run(ctx context.Context) error {
	category, err := s.chooseCategory(ctx)
	if err != nil {
		return err
	}

	modelsURL, err := s.chooseBrand(ctx, s.svc.CategoryURL(category))
	if err != nil {
		return err
	}

	yearsURL, err := s.chooseModel(ctx, modelsURL)
	if err != nil {
		return err
	}

	return s.showVehicles(ctx, yearsURL)
}

func (s *Session) chooseCategory(ctx context.Context) (model.Category, error) {
	for {
		s.println("Digite um número para iniciar a busca pelo tipo de veículo desejado: ")
		for _, c := range model.Categories() {
			s.printf("%d = %s\n", int(c), c)
		}

		line, err := s.readLine(ctx)
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			s.println(msgEntradaInvalida)
			continue
		}

		category, ok := model.CategoryFromChoice(choice)
		if !ok {
			s.println(msgOpcaoInvalida)
			continue
		}
		return category, nil
	}
}

func (s *Session) chooseBrand(ctx context.Context, brandsURL string) (string, error) {
	brands, err := s.svc.Brands(ctx, brandsURL)
	if err != nil {
		return "", err
	}

	s.println("Marcas: ")
	for _, b := range brands {
		s.println(b)
	}

	s.println("Digite o código da marca para pesquisar")
	brandCode, err := s.readLine(ctx)
	if err != nil {
		return "", err
	}

	modelsURL := service.ModelsURL(brandsURL, strings.TrimSpace(brandCode))
	s.println(modelsURL)
	return modelsURL, nil
}

func (s *Session) chooseModel(ctx context.Context, modelsURL string) (string, error) {
	list, err := s.svc.Models(ctx, modelsURL)
	if err != nil {
		return "", err
	}

	s.println("Modelos: ")
	for _, m := range service.SortedByCode(list.Models) {
		s.println(m)
	}

	s.println("Digite o nome de um veículo para buscar")
	query, err := s.readLine(ctx)
	if err != nil {
		return "", err
	}

	s.println("Filtrados")
	for _, m := range service.FilterByName(list.Models, query) {
		s.println(m)
	}

	s.println("Digite o código do modelo para buscar seus dados detalhados")
	modelCode, err := s.readLine(ctx)
	if err != nil {
		return "", err
	}

	return service.YearsURL(modelsURL, strings.TrimSpace(modelCode)), nil
}

func (s *Session) showVehicles(ctx context.Context, yearsURL string) error {
	years, err := s.svc.Years(ctx, yearsURL)
	if err != nil {
		return err
	}

	vehicles, err := s.svc.Vehicles(ctx, yearsURL, years)
	if err != nil {
		return err
	}

	s.println("Veículos filtrados: ")
	for _, v := range vehicles {
		s.println(v)
	}
	return nil
}

// readLine waits for the next input line or for ctx to be canceled,
// whichever comes first.
func (s *Session) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.lines == nil {
		s.lines = make(chan inputLine)
		go s.scan()
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-s.lines:
		if !ok {
			return "", ErrInputClosed
		}
		return l.text, l.err
	}
}

// scan feeds s.lines until the input ends
func (s *Session) scan() {
	defer close(s.lines)

	for s.in.Scan() {
		s.lines <- inputLine{text: strings.TrimRight(s.in.Text(), "\r")}
	}
	if err := s.in.Err(); err != nil {
		s.lines <- inputLine{err: fmt.Errorf("ler entrada: %w", err)}
	}
}

func (s *Session) println(v any) {
	fmt.Fprintln(s.out, v)
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
