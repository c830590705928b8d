package main

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
)

// services lo que usan los comandos; se abre en PersistentPreRunE.
type services struct {
	clients *usecase.ClientUseCase
	users   *usecase.UserUseCase
	migrate func(ctx context.Context) error
	close   func()
}

type connectFunc func(ctx context.Context) (*services, error)

func newRootCommand(connect connectFunc) *cobra.Command {
	var svc *services

	cmd := &cobra.Command{
		Use:          "restaurantectl",
		Short:        "Administración de clients, usuarios y membresías de la API de pedidos",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			s, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			svc = s
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if svc != nil && svc.close != nil {
				svc.close()
			}
		},
	}
	get := func() *services { return svc }

	cmd.AddCommand(
		newMigrateCommand(get),
		newClientCommand(get),
		newUserCommand(get),
		newMemberCommand(get),
	)
	return cmd
}

func newMigrateCommand(svc func() *services) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Crea las tablas que falten (idempotente)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if svc().migrate == nil {
				return errors.New("migrate: no soportado por este backend")
			}
			if err := svc().migrate(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "esquema actualizado")
			return nil
		},
	}
}

func newClientCommand(svc func() *services) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Clients (tenants)",
	}

	var in dto.CreateClientRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Dar de alta un client; sin --slug se deriva del nombre",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := svc().clients.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "client %d creado (slug %s)\n", out.ID, out.Slug)
			return nil
		},
	}
	create.Flags().StringVar(&in.Name, "name", "", "nombre del client")
	create.Flags().StringVar(&in.Slug, "slug", "", "slug único")
	create.Flags().StringVar(&in.DocumentType, "document-type", "", "tipo de documento")
	create.Flags().StringVar(&in.DocumentNumber, "document-number", "", "número de documento")
	create.Flags().StringVar(&in.Phone, "phone", "", "teléfono")
	create.Flags().StringVar(&in.Address, "address", "", "dirección")
	_ = create.MarkFlagRequired("name")

	list := &cobra.Command{
		Use:   "list",
		Short: "Listar clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clients, err := svc().clients.List(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSLUG\tNOMBRE")
			for _, c := range clients {
				fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.Slug, c.Name)
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(create, list)
	return cmd
}

func newUserCommand(svc func() *services) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Usuarios",
	}

	var (
		in               dto.CreateUserRequest
		staff, superuser bool
	)
	bindUserFlags := func(c *cobra.Command) {
		c.Flags().StringVar(&in.Email, "email", "", "email (se normaliza)")
		c.Flags().StringVar(&in.Password, "password", "", "password en texto plano")
		c.Flags().StringVar(&in.Name, "name", "", "nombre visible")
		c.Flags().BoolVar(&in.IsConfirmed, "confirmed", false, "marcar email como confirmado")
		_ = c.MarkFlagRequired("email")
		_ = c.MarkFlagRequired("password")
	}
	// solo se envían los flags que el operador pasó explícitamente
	flagsToRequest := func(c *cobra.Command) {
		if c.Flags().Changed("staff") {
			in.IsStaff = &staff
		}
		if c.Flags().Changed("superuser") {
			in.IsSuperuser = &superuser
		}
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Crear usuario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flagsToRequest(cmd)
			out, err := svc().users.CreateUser(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "usuario %d creado (%s)\n", out.ID, out.Email)
			return nil
		},
	}
	bindUserFlags(create)
	create.Flags().BoolVar(&staff, "staff", false, "acceso administrativo")
	create.Flags().BoolVar(&superuser, "superuser", false, "superusuario")

	createSuper := &cobra.Command{
		Use:   "createsuperuser",
		Short: "Crear superusuario (staff y superuser)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flagsToRequest(cmd)
			out, err := svc().users.CreateSuperuser(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "superusuario %d creado (%s)\n", out.ID, out.Email)
			return nil
		},
	}
	bindUserFlags(createSuper)
	createSuper.Flags().BoolVar(&staff, "staff", true, "acceso administrativo")
	createSuper.Flags().BoolVar(&superuser, "superuser", true, "superusuario")

	var email string
	show := &cobra.Command{
		Use:   "show",
		Short: "Mostrar usuario y sus clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := svc().users.GetByEmail(cmd.Context(), email)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\tactivo=%t\tstaff=%t\tsuperuser=%t\tclients=%v\n",
				u.ID, u.Email, u.IsActive, u.IsStaff, u.IsSuperuser, u.ClientIDs)
			return nil
		},
	}
	show.Flags().StringVar(&email, "email", "", "email del usuario")
	_ = show.MarkFlagRequired("email")

	cmd.AddCommand(create, createSuper, show)
	return cmd
}

func newMemberCommand(svc func() *services) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Membresías usuario-client",
	}

	var (
		clientID int64
		email    string
	)
	bind := func(c *cobra.Command) {
		c.Flags().Int64Var(&clientID, "client", 0, "id del client")
		c.Flags().StringVar(&email, "email", "", "email del usuario")
		_ = c.MarkFlagRequired("client")
		_ = c.MarkFlagRequired("email")
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Agregar usuario a un client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := svc().clients.AddMember(cmd.Context(), clientID, email); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s ahora es miembro del client %d\n", email, clientID)
			return nil
		},
	}
	bind(add)

	remove := &cobra.Command{
		Use:   "remove",
		Short: "Quitar usuario de un client (sus tokens dejan de valer para ese client)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := svc().clients.RemoveMember(cmd.Context(), clientID, email); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s ya no es miembro del client %d\n", email, clientID)
			return nil
		},
	}
	bind(remove)

	cmd.AddCommand(add, remove)
	return cmd
}
